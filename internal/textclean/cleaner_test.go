package textclean

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestClean(t *testing.T) {
	t.Parallel()

	c := NewCleaner()

	cases := []struct {
		name string
		in   string
		want string
	}{
		{
			name: "empty",
			in:   "",
			want: "",
		},
		{
			name: "fillers removed",
			in:   "euh je veux bah faire un virement",
			want: "je veux faire un virement",
		},
		{
			name: "polite phrases removed",
			in:   "consulter mon solde s'il vous plaît",
			want: "consulter mon solde",
		},
		{
			name: "euro sign expanded",
			in:   "envoyer 50€ à Marie",
			want: "envoyer 50 euros à marie",
		},
		{
			name: "punctuation and case",
			in:   "  Je VEUX mon   solde !!",
			want: "je veux mon solde",
		},
		{
			name: "filler inside words untouched",
			in:   "benjamin a genreux",
			want: "benjamin a genreux",
		},
	}

	for _, tc := range cases {
		tc := tc
		t.Run(tc.name, func(t *testing.T) {
			t.Parallel()
			assert.Equal(t, tc.want, c.Clean(tc.in))
		})
	}
}
