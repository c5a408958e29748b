package snapshot

import (
	"github.com/tutorflow/engine/internal/content"
	"github.com/tutorflow/engine/internal/engine"
)

// Indices bundles the four per-phase cursors.
type Indices struct {
	Comp      int `json:"comp"`
	Ex        int `json:"ex"`
	Worksheet int `json:"worksheet"`
	Test      int `json:"test"`
}

// Payload is the store-agnostic persisted snapshot shape: the resume
// pointer plus enough detail to fully rehydrate the session.
type Payload struct {
	Phase            string             `json:"phase"`
	SubPhase         string             `json:"subPhase"`
	TeachingStage    string             `json:"teachingStage"`
	StageRepeats     map[string]int     `json:"stageRepeats,omitempty"`
	GateFlags        engine.GateFlags   `json:"gateFlags"`
	Indices          Indices            `json:"indices"`
	Worksheet        []content.Question `json:"worksheet"`
	Test             []content.Question `json:"test"`
	TestAnswers      []string           `json:"testAnswers,omitempty"`
	TestCorrectness  []bool             `json:"testCorrectness,omitempty"`
	TestFinalPercent int                `json:"testFinalPercent"`
	CaptionBuffer    []string           `json:"captionBuffer,omitempty"`
	CaptionIndex     int                `json:"captionIndex"`
	Resume           engine.Resume      `json:"resume"`
}

// FromState builds the persisted payload from live session state.
func FromState(s *engine.State) *Payload {
	repeats := make(map[string]int, len(s.StageRepeats))
	for stage, n := range s.StageRepeats {
		repeats[stage.String()] = n
	}

	return &Payload{
		Phase:            s.Phase.String(),
		SubPhase:         s.SubPhase.String(),
		TeachingStage:    s.TeachingStage.String(),
		StageRepeats:     repeats,
		GateFlags:        s.Gate,
		Indices:          Indices{Comp: s.CompIndex, Ex: s.ExIndex, Worksheet: s.WorksheetIndex, Test: s.TestIndex},
		Worksheet:        s.Worksheet,
		Test:             s.Test,
		TestAnswers:      s.TestAnswers,
		TestCorrectness:  s.TestCorrectness,
		TestFinalPercent: s.TestFinalPercent,
		CaptionBuffer:    s.Captions,
		CaptionIndex:     s.CaptionIndex,
		Resume:           engine.DeriveResume(s),
	}
}

// Apply rehydrates session state from a persisted payload. Unknown enum
// values fall back to the safest state (teaching entrance) rather than
// failing the restore.
func (p *Payload) Apply(s *engine.State) {
	if phase, err := engine.ParsePhase(p.Phase); err == nil {
		s.Phase = phase
	}
	if sub, err := engine.ParseSubPhase(p.SubPhase); err == nil {
		s.SubPhase = sub
	}
	if stage, err := engine.ParseTeachingStage(p.TeachingStage); err == nil {
		s.TeachingStage = stage
	}

	s.StageRepeats = make(map[engine.TeachingStage]int, len(p.StageRepeats))
	for name, n := range p.StageRepeats {
		if stage, err := engine.ParseTeachingStage(name); err == nil {
			s.StageRepeats[stage] = n
		}
	}

	s.Gate = p.GateFlags
	s.CompIndex = p.Indices.Comp
	s.ExIndex = p.Indices.Ex
	s.WorksheetIndex = p.Indices.Worksheet
	s.TestIndex = p.Indices.Test
	s.Worksheet = p.Worksheet
	s.Test = p.Test
	s.TestAnswers = p.TestAnswers
	s.TestCorrectness = p.TestCorrectness
	s.TestFinalPercent = p.TestFinalPercent
	s.Captions = p.CaptionBuffer
	s.CaptionIndex = p.CaptionIndex
	s.Ticker = p.Resume.Ticker
}
