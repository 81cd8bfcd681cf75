package core

// Date is the twelve-int16 modification/access timestamp tuple GDSII
// stores on BGNLIB and BGNSTR records: year, month, day, hour, minute,
// second, each duplicated for modification and access.
type Date struct {
	ModYear, ModMonth, ModDay, ModHour, ModMinute, ModSecond int16
	AccYear, AccMonth, AccDay, AccHour, AccMinute, AccSecond int16
}

// DateFromInt16s builds a Date from the twelve values carried by a BGNLIB
// or BGNSTR record, in wire order.
func DateFromInt16s(v []int16, offset int64) (Date, error) {
	if len(v) < 12 {
		return Date{}, NewErrorAt(KindMalformedRecord, offset, "date tuple has fewer than 12 fields")
	}
	return Date{
		ModYear: v[0], ModMonth: v[1], ModDay: v[2],
		ModHour: v[3], ModMinute: v[4], ModSecond: v[5],
		AccYear: v[6], AccMonth: v[7], AccDay: v[8],
		AccHour: v[9], AccMinute: v[10], AccSecond: v[11],
	}, nil
}

// Int16s returns the twelve-field wire representation of d.
func (d Date) Int16s() [12]int16 {
	return [12]int16{
		d.ModYear, d.ModMonth, d.ModDay, d.ModHour, d.ModMinute, d.ModSecond,
		d.AccYear, d.AccMonth, d.AccDay, d.AccHour, d.AccMinute, d.AccSecond,
	}
}

// IsZero reports whether every field of d is zero (the "date-zero-ok"
// placeholder timestamp used by libraries/cells that never set a clock).
func (d Date) IsZero() bool {
	return d == Date{}
}
