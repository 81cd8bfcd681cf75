package gdsii

import (
	"testing"

	"github.com/stretchr/testify/require"
)

type fixedClock struct{ date Date }

func (f fixedClock) Now() Date { return f.date }

func TestLibrary_Touch_UpdatesAccessTimestampOnly(t *testing.T) {
	lib := NewLibrary("X")
	cell := NewCell("A")
	cell.Date.ModYear = 2020

	clock := fixedClock{date: Date{
		ModYear: 2099, ModMonth: 1, ModDay: 1,
		AccYear: 2024, AccMonth: 6, AccDay: 15, AccHour: 9, AccMinute: 30, AccSecond: 0,
	}}
	lib.Touch(cell, clock)

	require.Equal(t, int16(2020), cell.Date.ModYear, "modification timestamp must not change")
	require.Equal(t, int16(2024), cell.Date.AccYear)
	require.Equal(t, int16(6), cell.Date.AccMonth)
	require.Equal(t, int16(15), cell.Date.AccDay)
}

func TestSystemClock_SetsModAndAccToSameMoment(t *testing.T) {
	d := SystemClock{}.Now()
	require.Equal(t, d.ModYear, d.AccYear)
	require.Equal(t, d.ModMonth, d.AccMonth)
	require.Equal(t, d.ModDay, d.AccDay)
	require.Equal(t, d.ModHour, d.AccHour)
	require.Equal(t, d.ModMinute, d.AccMinute)
	require.Equal(t, d.ModSecond, d.AccSecond)
}
