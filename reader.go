package gdsii

import (
	"github.com/layoutkit/gdsii/internal/core"
	"github.com/layoutkit/gdsii/internal/pipeline"
)

// Parse decodes buf as a GDSII stream and returns a fully-linked
// Library: every reference resolved to a concrete cell, the reference
// graph checked acyclic, and every cell name unique. On any failure no
// partial library is returned.
func Parse(buf []byte, opts ...ParseOption) (*Library, error) {
	cfg := defaultParseConfig()
	for _, opt := range opts {
		opt(&cfg)
	}

	cfg.logger.Debug().Int("bytes", len(buf)).Msg("gdsii: decoding records")
	records, err := pipeline.Decode(buf, cfg.workers)
	if err != nil {
		return nil, err
	}

	cfg.logger.Debug().Int("records", len(records)).Msg("gdsii: running structural parse")
	result, err := pipeline.Parse(records)
	if err != nil {
		return nil, err
	}

	if err := checkLayerRanges(result, cfg); err != nil {
		return nil, err
	}

	cfg.logger.Debug().Int("cells", len(result.Cells)).Msg("gdsii: resolving references")
	arena, err := pipeline.Resolve(result)
	if err != nil {
		return nil, err
	}

	return &Library{
		Name:      result.Header.Name,
		UserUnit:  result.Header.MetersPerDbUnit / result.Header.UserPerDbUnit,
		Precision: result.Header.MetersPerDbUnit,
		Date:      result.Header.Date,
		arena:     arena,
	}, nil
}

// checkLayerRanges enforces the conventional 0-255 layer/datatype range.
// With WithStrictLayerRange it fails the parse; otherwise it only logs.
func checkLayerRanges(result *pipeline.ParseResult, cfg parseConfig) error {
	report := func(what string, value int16) error {
		if value >= 0 && value <= 255 {
			return nil
		}
		if cfg.strictLayerRange {
			return core.NewError(core.KindNameConstraint, what+" value out of the conventional 0-255 range")
		}
		cfg.logger.Warn().Str("field", what).Int16("value", value).Msg("gdsii: value outside the conventional 0-255 range")
		return nil
	}

	for _, cell := range result.Cells {
		for _, poly := range cell.Polygons {
			if err := report("layer", poly.Layer); err != nil {
				return err
			}
			if err := report("datatype", poly.DataType); err != nil {
				return err
			}
		}
		for _, path := range cell.Paths {
			if err := report("layer", path.Layer); err != nil {
				return err
			}
			if err := report("datatype", path.DataType); err != nil {
				return err
			}
		}
		for _, text := range cell.Texts {
			if err := report("layer", text.Layer); err != nil {
				return err
			}
			if err := report("datatype", text.DataType); err != nil {
				return err
			}
		}
	}
	return nil
}
