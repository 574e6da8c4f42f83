package pathenc

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestEscape(t *testing.T) {
	tests := []struct {
		name string
		in   string
		want string
	}{
		{
			name: "path with spaces",
			in:   "/this is a test/for spaces/",
			want: "/this%20is%20a%20test/for%20spaces/",
		},
		{
			name: "file name with space",
			in:   "notebook with space.ipynb",
			want: "notebook%20with%20space.ipynb",
		},
		{
			name: "nested path with spaces",
			in:   "/path with a/notebook and space.ipynb",
			want: "/path%20with%20a/notebook%20and%20space.ipynb",
		},
		{
			name: "special characters",
			in:   "/ !@$#%^&* / test %^ notebook @#$ name.ipynb",
			want: "/%20%21%40%24%23%25%5E%26%2A%20/%20test%20%25%5E%20notebook%20%40%23%24%20name.ipynb",
		},
		{
			name: "already safe input unchanged",
			in:   "/plain/path-to_file.txt",
			want: "/plain/path-to_file.txt",
		},
		{
			name: "empty string",
			in:   "",
			want: "",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, Escape(tt.in))
		})
	}
}

func TestUnescape(t *testing.T) {
	tests := []struct {
		name string
		in   string
		want string
	}{
		{
			name: "path with spaces",
			in:   "/this%20is%20a%20test/for%20spaces/",
			want: "/this is a test/for spaces/",
		},
		{
			name: "file name with space",
			in:   "notebook%20with%20space.ipynb",
			want: "notebook with space.ipynb",
		},
		{
			name: "nested path with spaces",
			in:   "/path%20with%20a/notebook%20and%20space.ipynb",
			want: "/path with a/notebook and space.ipynb",
		},
		{
			name: "special characters",
			in:   "/%20%21%40%24%23%25%5E%26%2A%20/%20test%20%25%5E%20notebook%20%40%23%24%20name.ipynb",
			want: "/ !@$#%^&* / test %^ notebook @#$ name.ipynb",
		},
		{
			name: "lowercase hex accepted",
			in:   "a%2fb",
			want: "a/b",
		},
		{
			name: "no escapes unchanged",
			in:   "/plain/path.txt",
			want: "/plain/path.txt",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, Unescape(tt.in))
		})
	}
}

// Malformed escape sequences are passed through literally, never reported
// as errors.
func TestUnescapeMalformed(t *testing.T) {
	tests := []struct {
		name string
		in   string
		want string
	}{
		{name: "bare percent", in: "100%", want: "100%"},
		{name: "percent with one hex digit", in: "50%2", want: "50%2"},
		{name: "percent with non-hex", in: "a%zzb", want: "a%zzb"},
		{name: "valid escape after malformed", in: "%g0%20", want: "%g0 "},
		{name: "double percent", in: "%%41", want: "%A"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, Unescape(tt.in))
		})
	}
}

func TestRoundTrip(t *testing.T) {
	inputs := []string{
		"/this is a test/for spaces/",
		"notebook with space.ipynb",
		"/ !@$#%^&* / test %^ notebook @#$ name.ipynb",
		"plain.txt",
		"",
		"%",
		"50% off.ipynb",
		"/a/b/c d/e~f_g-h.i",
	}

	for _, in := range inputs {
		assert.Equal(t, in, Unescape(Escape(in)), "round trip for %q", in)
	}
}
