package content

import (
	"encoding/json"
	"fmt"
	"os"
)

// Source loads lesson content by reference. The catalog backing it is an
// external collaborator; the file loader below is the default for local use.
type Source interface {
	LoadLessonContent(ref string) (*LessonContent, error)
}

// FileSource loads lesson content from JSON files relative to a base
// directory. A ref may include a subject prefix and .json suffix; both are
// accepted as-is since the path is resolved against Base.
type FileSource struct {
	Base string
}

func (s *FileSource) LoadLessonContent(ref string) (*LessonContent, error) {
	path := ref
	if s.Base != "" {
		path = s.Base + string(os.PathSeparator) + ref
	}
	raw, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("read lesson content %q: %w", ref, err)
	}
	return Parse(raw)
}

// Parse validates and decodes raw lesson JSON.
func Parse(raw []byte) (*LessonContent, error) {
	if err := validateLesson(raw); err != nil {
		return nil, err
	}

	var lc LessonContent
	if err := json.Unmarshal(raw, &lc); err != nil {
		return nil, fmt.Errorf("decode lesson content: %w", err)
	}

	normalizeLegacy(&lc)
	return &lc, nil
}

// normalizeLegacy tags legacy flat worksheet/test questions so they carry a
// uniform shape. Unset question types default to short-answer, unless the
// item has choices (mc) or a boolean-looking answer (tf).
func normalizeLegacy(lc *LessonContent) {
	for _, arr := range [][]Question{lc.LegacyWorksheet, lc.LegacyTest} {
		for i := range arr {
			q := &arr[i]
			if q.SourceType == "" {
				q.SourceType = SourceLegacy
			}
			if q.QuestionType != "" {
				continue
			}
			switch {
			case len(q.Choices) > 0:
				q.QuestionType = TypeMultipleChoice
			case q.Answer == "true" || q.Answer == "false":
				q.QuestionType = TypeTrueFalse
			default:
				q.QuestionType = TypeShortAnswer
			}
		}
	}
}
