package bind

import (
	"errors"
	"io"
	"mime/multipart"
	"net/http"
	"net/url"
	"strings"
	"sync"
	"time"

	perr "lunara/internal/platform/errors"

	"github.com/go-playground/form/v4"
)

// dateLayout is the wire format for date-only form fields
const dateLayout = "2006-01-02"

// FormOptions controls form parsing behavior
type FormOptions struct {
	// MaxBytes caps the whole request body, urlencoded or multipart; it also
	// serves as the multipart in-memory threshold before spilling to temp
	// files. Default 8MiB
	MaxBytes int64
}

func defaultFormOptions() FormOptions {
	return FormOptions{MaxBytes: 8 << 20}
}

var (
	formOnce sync.Once
	formDec  *form.Decoder
)

// formDecoder returns the singleton form decoder: `form` tag names,
// date-only time fields, and checkbox-style bools where only the literal
// "true" is true
func formDecoder() *form.Decoder {
	formOnce.Do(func() {
		d := form.NewDecoder()
		d.SetTagName("form")
		d.RegisterCustomTypeFunc(func(vals []string) (any, error) {
			return time.Parse(dateLayout, vals[0])
		}, time.Time{})
		d.RegisterCustomTypeFunc(func(vals []string) (any, error) {
			return vals[0] == "true", nil
		}, false)
		formDec = d
	})
	return formDec
}

// ParseForm decodes urlencoded or multipart form fields into T and validates it.
// Fields are matched by `form` tags; coercion failures map to typed project errors
// carrying the offending field name. The request stays parsed, so uploads remain
// reachable via FormFile afterwards
func ParseForm[T any](r *http.Request, opts ...FormOptions) (T, error) {
	var zero T
	o := defaultFormOptions()
	if len(opts) > 0 {
		o = opts[0]
	}

	r.Body = http.MaxBytesReader(nil, r.Body, o.MaxBytes)
	ct := r.Header.Get("Content-Type")
	if strings.HasPrefix(ct, "multipart/form-data") {
		if err := r.ParseMultipartForm(o.MaxBytes); err != nil {
			return zero, perr.FormErrf("invalid multipart form: %v", err)
		}
	} else {
		if err := r.ParseForm(); err != nil {
			return zero, perr.FormErrf("invalid form: %v", err)
		}
	}

	// absent and blank fields are the validator's call (required tag)
	vals := make(url.Values, len(r.Form))
	for k, vv := range r.Form {
		for _, v := range vv {
			if s := strings.TrimSpace(v); s != "" {
				vals.Add(k, s)
			}
		}
	}

	var dst T
	if err := formDecoder().Decode(&dst, vals); err != nil {
		var derrs form.DecodeErrors
		if errors.As(err, &derrs) {
			for name, cause := range derrs {
				return zero, perr.WithField(perr.Wrapf(cause, perr.ErrorCodeForm, "%s is invalid", name), name)
			}
		}
		return zero, perr.FormErrf("invalid form: %v", err)
	}

	if err := validateStruct(dst); err != nil {
		return zero, err
	}
	return dst, nil
}

// FormFile returns the named upload, or ok=false when the field is absent or
// was submitted with an empty filename
func FormFile(r *http.Request, name string) (*multipart.FileHeader, bool) {
	if r.MultipartForm == nil || r.MultipartForm.File == nil {
		return nil, false
	}
	fhs := r.MultipartForm.File[name]
	if len(fhs) == 0 || fhs[0].Filename == "" {
		return nil, false
	}
	return fhs[0], true
}

// ReadFile reads an upload fully into memory
func ReadFile(fh *multipart.FileHeader) ([]byte, error) {
	f, err := fh.Open()
	if err != nil {
		return nil, perr.Wrapf(err, perr.ErrorCodeForm, "open upload %q", fh.Filename)
	}
	defer func() { _ = f.Close() }()
	b, err := io.ReadAll(f)
	if err != nil {
		return nil, perr.Wrapf(err, perr.ErrorCodeForm, "read upload %q", fh.Filename)
	}
	return b, nil
}
