package bind

import (
	"bytes"
	"mime/multipart"
	"net/http/httptest"
	"net/url"
	"strings"
	"testing"
	"time"

	perr "lunara/internal/platform/errors"
)

type historyForm struct {
	Name  string    `form:"name" validate:"required"`
	Count int       `form:"count" validate:"omitempty,min=1"`
	Since time.Time `form:"since"`
	Flag  bool      `form:"flag"`
}

func TestParseFormURLEncoded(t *testing.T) {
	t.Parallel()

	vals := url.Values{}
	vals.Set("name", "ada")
	vals.Set("count", "3")
	vals.Set("since", "2024-01-01")
	vals.Set("flag", "true")

	r := httptest.NewRequest("POST", "/x", strings.NewReader(vals.Encode()))
	r.Header.Set("Content-Type", "application/x-www-form-urlencoded")

	got, err := ParseForm[historyForm](r)
	if err != nil {
		t.Fatalf("ParseForm: %v", err)
	}
	if got.Name != "ada" || got.Count != 3 || !got.Flag {
		t.Fatalf("unexpected parse: %+v", got)
	}
	if want := time.Date(2024, time.January, 1, 0, 0, 0, 0, time.UTC); !got.Since.Equal(want) {
		t.Fatalf("since = %v, want %v", got.Since, want)
	}
}

func TestParseFormBoolLiteral(t *testing.T) {
	t.Parallel()

	for raw, want := range map[string]bool{"true": true, "True": false, "1": false, "yes": false} {
		vals := url.Values{}
		vals.Set("name", "ada")
		vals.Set("flag", raw)
		r := httptest.NewRequest("POST", "/x", strings.NewReader(vals.Encode()))
		r.Header.Set("Content-Type", "application/x-www-form-urlencoded")

		got, err := ParseForm[historyForm](r)
		if err != nil {
			t.Fatalf("ParseForm(%q): %v", raw, err)
		}
		if got.Flag != want {
			t.Fatalf("flag %q = %v, want %v", raw, got.Flag, want)
		}
	}
}

func TestParseFormCoercionErrors(t *testing.T) {
	t.Parallel()

	cases := []struct {
		name  string
		key   string
		value string
		field string
	}{
		{"bad int", "count", "three", "count"},
		{"bad date", "since", "01/02/2024", "since"},
	}
	for _, tc := range cases {
		tc := tc
		t.Run(tc.name, func(t *testing.T) {
			t.Parallel()
			vals := url.Values{}
			vals.Set("name", "ada")
			vals.Set(tc.key, tc.value)
			r := httptest.NewRequest("POST", "/x", strings.NewReader(vals.Encode()))
			r.Header.Set("Content-Type", "application/x-www-form-urlencoded")

			_, err := ParseForm[historyForm](r)
			if perr.CodeOf(err) != perr.ErrorCodeForm {
				t.Fatalf("code = %v, want form error (err %v)", perr.CodeOf(err), err)
			}
			if e, ok := perr.As(err); !ok || e.Field() != tc.field {
				t.Fatalf("field = %v, want %q", err, tc.field)
			}
		})
	}
}

func TestParseFormValidation(t *testing.T) {
	t.Parallel()

	// name is required
	r := httptest.NewRequest("POST", "/x", strings.NewReader("count=2"))
	r.Header.Set("Content-Type", "application/x-www-form-urlencoded")

	_, err := ParseForm[historyForm](r)
	if perr.CodeOf(err) != perr.ErrorCodeValidation {
		t.Fatalf("code = %v, want validation (err %v)", perr.CodeOf(err), err)
	}
}

// oversized bodies are rejected outright, not spilled to temp files
func TestParseFormBodyCap(t *testing.T) {
	t.Parallel()

	var buf bytes.Buffer
	mw := multipart.NewWriter(&buf)
	if err := mw.WriteField("name", "ada"); err != nil {
		t.Fatalf("write field: %v", err)
	}
	fw, err := mw.CreateFormFile("bbtFile", "history.csv")
	if err != nil {
		t.Fatalf("create file: %v", err)
	}
	if _, err := fw.Write(bytes.Repeat([]byte("a"), 4<<10)); err != nil {
		t.Fatalf("write file: %v", err)
	}
	if err := mw.Close(); err != nil {
		t.Fatalf("close writer: %v", err)
	}

	r := httptest.NewRequest("POST", "/x", &buf)
	r.Header.Set("Content-Type", mw.FormDataContentType())

	_, err = ParseForm[historyForm](r, FormOptions{MaxBytes: 256})
	if perr.CodeOf(err) != perr.ErrorCodeForm {
		t.Fatalf("code = %v, want form error (err %v)", perr.CodeOf(err), err)
	}
}

func TestParseFormMultipartAndFiles(t *testing.T) {
	t.Parallel()

	var buf bytes.Buffer
	mw := multipart.NewWriter(&buf)
	if err := mw.WriteField("name", "ada"); err != nil {
		t.Fatalf("write field: %v", err)
	}
	fw, err := mw.CreateFormFile("bbtFile", "history.csv")
	if err != nil {
		t.Fatalf("create file: %v", err)
	}
	if _, err := fw.Write([]byte("user_id,bbt\nada,36.5\n")); err != nil {
		t.Fatalf("write file: %v", err)
	}
	if err := mw.Close(); err != nil {
		t.Fatalf("close writer: %v", err)
	}

	r := httptest.NewRequest("POST", "/x", &buf)
	r.Header.Set("Content-Type", mw.FormDataContentType())

	got, err := ParseForm[historyForm](r)
	if err != nil {
		t.Fatalf("ParseForm: %v", err)
	}
	if got.Name != "ada" {
		t.Fatalf("name = %q", got.Name)
	}

	fh, ok := FormFile(r, "bbtFile")
	if !ok {
		t.Fatalf("expected upload to be present")
	}
	data, err := ReadFile(fh)
	if err != nil {
		t.Fatalf("ReadFile: %v", err)
	}
	if !bytes.HasPrefix(data, []byte("user_id,bbt")) {
		t.Fatalf("unexpected upload bytes %q", data)
	}

	if _, ok := FormFile(r, "absent"); ok {
		t.Fatalf("absent field should not be ok")
	}
}
