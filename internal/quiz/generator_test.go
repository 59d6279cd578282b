package quiz

import (
	"math/rand"
	"strings"
	"testing"

	"github.com/hanja-study/hanjastudy/internal/catalog"
)

func testCatalog() *catalog.Catalog {
	return catalog.New(
		[]catalog.Hanja{
			{Grade: "8급", Character: "水", Reading: "수", Meaning: "물"},
			{Grade: "8급", Character: "火", Reading: "화", Meaning: "불"},
			{Grade: "8급", Character: "木", Reading: "목", Meaning: "나무"},
			{Grade: "8급", Character: "金", Reading: "금", Meaning: "쇠"},
			{Grade: "8급", Character: "土", Reading: "토", Meaning: "흙"},
			{Grade: "7급", Character: "天", Reading: "천", Meaning: "하늘"},
			{Grade: "7급", Character: "地", Reading: "지", Meaning: "땅"},
		},
		[]catalog.Word{
			{Grade: "6급", Korean: "학교", Hanja: "學校"},
			{Grade: "6급", Korean: "학생", Hanja: "學生"},
			{Grade: "6급", Korean: "선생", Hanja: "先生"},
			{Grade: "6급", Korean: "교실", Hanja: "敎室"},
			{Grade: "5급", Korean: "천지", Hanja: "天地"},
		},
	)
}

func testGenerator() *Generator {
	return NewGenerator(testCatalog(), WithRand(rand.New(rand.NewSource(1))))
}

func TestMultipleChoice(t *testing.T) {
	qs := testGenerator().MultipleChoice("8급", 3, "")
	if len(qs) != 3 {
		t.Fatalf("got %d questions, want 3", len(qs))
	}
	for _, q := range qs {
		if q.Type != TypeMeaningReading {
			t.Errorf("type = %q, want %q", q.Type, TypeMeaningReading)
		}
		if len(q.Options) != 4 {
			t.Errorf("got %d options, want 4", len(q.Options))
		}
		found := false
		for _, o := range q.Options {
			if o == q.Answer {
				found = true
			}
		}
		if !found {
			t.Errorf("answer %q missing from options %v", q.Answer, q.Options)
		}
		if !strings.Contains(q.Prompt, q.Character) {
			t.Errorf("prompt %q does not mention character %q", q.Prompt, q.Character)
		}
	}
}

func TestMultipleChoice_CountClamped(t *testing.T) {
	qs := testGenerator().MultipleChoice("8급", 100, "")
	if len(qs) != 5 {
		t.Errorf("got %d questions, want all 5 in grade", len(qs))
	}
	if qs := testGenerator().MultipleChoice("없는급", 10, ""); len(qs) != 0 {
		t.Errorf("unknown grade produced %d questions", len(qs))
	}
}

func TestMultipleChoice_TargetCharacter(t *testing.T) {
	qs := testGenerator().MultipleChoice("8급", 10, "水")
	if len(qs) != 1 {
		t.Fatalf("got %d questions, want exactly 1 for target", len(qs))
	}
	if qs[0].Character != "水" || qs[0].Answer != "수, 물" {
		t.Errorf("unexpected question: %+v", qs[0])
	}

	if qs := testGenerator().MultipleChoice("8급", 10, "天"); len(qs) != 0 {
		t.Errorf("target outside grade produced %d questions", len(qs))
	}
}

func TestMultipleChoice_TooFewDistractors(t *testing.T) {
	// 7급 holds two characters: no way to supply three distractors
	if qs := testGenerator().MultipleChoice("7급", 10, ""); len(qs) != 0 {
		t.Errorf("grade with 2 entries produced %d questions", len(qs))
	}
}

func TestSubjective(t *testing.T) {
	qs := testGenerator().Subjective("8급", 2)
	if len(qs) != 2 {
		t.Fatalf("got %d questions, want 2", len(qs))
	}
	for _, q := range qs {
		if q.Options != nil {
			t.Errorf("subjective question carries options: %v", q.Options)
		}
		if !strings.Contains(q.Answer, ", ") {
			t.Errorf("answer %q is not reading, meaning", q.Answer)
		}
	}
}

func TestWord_GradeGating(t *testing.T) {
	g := testGenerator()
	if qs := g.Word("8급", 5); len(qs) != 0 {
		t.Errorf("word quiz for non-allowlisted grade produced %d questions", len(qs))
	}
	if qs := g.WordSubjective("준8급", 5); len(qs) != 0 {
		t.Errorf("word subjective for non-allowlisted grade produced %d questions", len(qs))
	}

	qs := g.Word("6급", 2)
	if len(qs) != 2 {
		t.Fatalf("got %d word questions, want 2", len(qs))
	}
	for _, q := range qs {
		if q.Type != TypeHanjaWord || len(q.Options) != 4 {
			t.Errorf("unexpected word question: %+v", q)
		}
	}
}

func TestWord_DistractorsToppedUpAcrossGrades(t *testing.T) {
	// 5급 has a single word: all three distractors must come from elsewhere
	qs := testGenerator().Word("5급", 1)
	if len(qs) != 1 {
		t.Fatalf("got %d questions, want 1", len(qs))
	}
	if len(qs[0].Options) != 4 {
		t.Errorf("got %d options, want 4", len(qs[0].Options))
	}
	seen := map[string]bool{}
	for _, o := range qs[0].Options {
		if seen[o] {
			t.Errorf("duplicate option %q", o)
		}
		seen[o] = true
	}
}

func TestWordSubjective(t *testing.T) {
	qs := testGenerator().WordSubjective("6급", 3)
	if len(qs) != 3 {
		t.Fatalf("got %d questions, want 3", len(qs))
	}
	for _, q := range qs {
		if q.Options != nil || q.Type != TypeHanjaWordSubjective {
			t.Errorf("unexpected question: %+v", q)
		}
	}
}

func TestReview(t *testing.T) {
	qs := testGenerator().Review("8급", []string{"水", "火", "龍"})
	// 龍 is not in the catalog and must be skipped silently
	if len(qs) != 2 {
		t.Fatalf("got %d review questions, want 2", len(qs))
	}
	if qs[0].Character != "水" || qs[1].Character != "火" {
		t.Errorf("review order wrong: %q, %q", qs[0].Character, qs[1].Character)
	}
	if qs[0].ID != 1 || qs[1].ID != 2 {
		t.Errorf("review ids not sequential: %d, %d", qs[0].ID, qs[1].ID)
	}
}

func TestReview_Empty(t *testing.T) {
	if qs := testGenerator().Review("8급", nil); len(qs) != 0 {
		t.Errorf("empty wrong-answer set produced %d questions", len(qs))
	}
}
