package runfile

import (
	"errors"
	"fmt"

	"github.com/penwyp/go-tuxsplit/internal/core/model"
	"github.com/penwyp/go-tuxsplit/internal/core/timing"
)

// Document is the on-disk shape of a run. All times are integral
// milliseconds; a null or missing value means no recorded time.
type Document struct {
	Game         string            `json:"game"`
	Category     string            `json:"category"`
	AttemptCount int               `json:"attempt_count"`
	Comparisons  []string          `json:"comparisons,omitempty"`
	Segments     []SegmentDocument `json:"segments"`
}

// SegmentDocument is the on-disk shape of one segment.
type SegmentDocument struct {
	Name        string                  `json:"name"`
	Best        *TimeDocument           `json:"best,omitempty"`
	Comparisons map[string]TimeDocument `json:"comparisons,omitempty"`
	Split       *TimeDocument           `json:"split,omitempty"`
}

// TimeDocument carries one optional duration per timing method.
type TimeDocument struct {
	Real *int64 `json:"real,omitempty"`
	Game *int64 `json:"game,omitempty"`
}

func (td *TimeDocument) validate() error {
	if td == nil {
		return nil
	}
	if td.Real != nil && *td.Real < 0 {
		return errors.New("negative real time")
	}
	if td.Game != nil && *td.Game < 0 {
		return errors.New("negative game time")
	}
	return nil
}

// Validate rejects documents the engine cannot represent: runs without
// segments and negative stored times.
func (d *Document) Validate() error {
	if len(d.Segments) == 0 {
		return model.ErrEmptyRun
	}
	for i := range d.Segments {
		seg := &d.Segments[i]
		if err := seg.Best.validate(); err != nil {
			return fmt.Errorf("segment %d (%q) best: %w", i, seg.Name, err)
		}
		if err := seg.Split.validate(); err != nil {
			return fmt.Errorf("segment %d (%q) split: %w", i, seg.Name, err)
		}
		for name, td := range seg.Comparisons {
			if err := td.validate(); err != nil {
				return fmt.Errorf("segment %d (%q) comparison %q: %w", i, seg.Name, name, err)
			}
		}
	}
	return nil
}

// ToRun converts a validated document into the in-memory model.
func (d *Document) ToRun() *model.Run {
	run := model.NewRun(d.Game, d.Category)
	run.AttemptCount = d.AttemptCount
	if d.Comparisons != nil {
		run.Comparisons = append([]string(nil), d.Comparisons...)
	}
	for i := range d.Segments {
		sd := &d.Segments[i]
		seg := model.NewSegment(sd.Name)
		seg.BestSegmentTime = toTime(sd.Best)
		seg.SplitTime = toTime(sd.Split)
		for name, td := range sd.Comparisons {
			seg.Comparisons[name] = toTime(&td)
		}
		run.PushSegment(seg)
	}
	return run
}

// FromRun converts the in-memory model into its on-disk shape.
func FromRun(run *model.Run) *Document {
	doc := &Document{
		Game:         run.GameName,
		Category:     run.CategoryName,
		AttemptCount: run.AttemptCount,
		Segments:     make([]SegmentDocument, 0, run.Len()),
	}
	if run.Comparisons != nil {
		doc.Comparisons = append([]string(nil), run.Comparisons...)
	}
	for i := range run.Segments {
		seg := &run.Segments[i]
		sd := SegmentDocument{
			Name:  seg.Name,
			Best:  fromTime(seg.BestSegmentTime),
			Split: fromTime(seg.SplitTime),
		}
		if len(seg.Comparisons) > 0 {
			sd.Comparisons = make(map[string]TimeDocument, len(seg.Comparisons))
			for name, t := range seg.Comparisons {
				if td := fromTime(t); td != nil {
					sd.Comparisons[name] = *td
				}
			}
		}
		doc.Segments = append(doc.Segments, sd)
	}
	return doc
}

func toTime(td *TimeDocument) timing.Time {
	var t timing.Time
	if td == nil {
		return t
	}
	if td.Real != nil {
		t = t.WithMethod(timing.RealTime, timing.FromMilliseconds(*td.Real).Ptr())
	}
	if td.Game != nil {
		t = t.WithMethod(timing.GameTime, timing.FromMilliseconds(*td.Game).Ptr())
	}
	return t
}

func fromTime(t timing.Time) *TimeDocument {
	if t.IsEmpty() {
		return nil
	}
	td := &TimeDocument{}
	if ts := t.Get(timing.RealTime); ts != nil {
		ms := ts.Milliseconds()
		td.Real = &ms
	}
	if ts := t.Get(timing.GameTime); ts != nil {
		ms := ts.Milliseconds()
		td.Game = &ms
	}
	return td
}
