package twitter

import (
	"testing"
)

func TestNonBlank(t *testing.T) {
	props := MapProperties{
		"keywords": "golang",
		"user":     "  alice ",
		"blank":    "   ",
		"empty":    "",
	}

	t.Run("matches when all keys hold text", func(t *testing.T) {
		if !NonBlank("keywords", "user").Satisfied(props) {
			t.Error("expected satisfied")
		}
	})

	t.Run("whitespace only is blank", func(t *testing.T) {
		if NonBlank("blank").Satisfied(props) {
			t.Error("expected not satisfied")
		}
	})

	t.Run("empty string is blank", func(t *testing.T) {
		if NonBlank("empty").Satisfied(props) {
			t.Error("expected not satisfied")
		}
	})

	t.Run("missing key", func(t *testing.T) {
		if NonBlank("keywords", "missing").Satisfied(props) {
			t.Error("expected not satisfied")
		}
	})

	t.Run("nil properties", func(t *testing.T) {
		if NonBlank("keywords").Satisfied(nil) {
			t.Error("expected not satisfied")
		}
	})

	t.Run("no keys (vacuous truth)", func(t *testing.T) {
		if !NonBlank().Satisfied(props) {
			t.Error("expected satisfied for empty key list")
		}
	})

	t.Run("non-string JSON value is blank", func(t *testing.T) {
		jp, err := JSONProperties([]byte(`{"user": 12345}`))
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		if NonBlank("user").Satisfied(jp) {
			t.Error("expected not satisfied")
		}
	})
}

func TestAll(t *testing.T) {
	props := MapProperties{"keywords": "go", "user": "alice"}

	t.Run("all satisfied", func(t *testing.T) {
		r := All(NonBlank("keywords"), NonBlank("user"))
		if !r.Satisfied(props) {
			t.Error("expected satisfied")
		}
	})

	t.Run("one unsatisfied", func(t *testing.T) {
		r := All(NonBlank("keywords"), NonBlank("recipientUser"))
		if r.Satisfied(props) {
			t.Error("expected not satisfied")
		}
	})

	t.Run("empty is satisfied", func(t *testing.T) {
		if !All().Satisfied(props) {
			t.Error("expected satisfied")
		}
	})
}

func TestAny(t *testing.T) {
	props := MapProperties{"user": "alice"}

	t.Run("one satisfied", func(t *testing.T) {
		r := Any(NonBlank("keywords"), NonBlank("user"))
		if !r.Satisfied(props) {
			t.Error("expected satisfied")
		}
	})

	t.Run("none satisfied", func(t *testing.T) {
		r := Any(NonBlank("keywords"), NonBlank("recipientUser"))
		if r.Satisfied(props) {
			t.Error("expected not satisfied")
		}
	})

	t.Run("empty is unsatisfied", func(t *testing.T) {
		if Any().Satisfied(props) {
			t.Error("expected not satisfied")
		}
	})
}
