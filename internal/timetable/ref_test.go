package timetable

import (
	"testing"

	"github.com/stretchr/testify/require"
)

func TestParseRef(t *testing.T) {
	type want struct {
		ref Ref
		err bool
	}

	type testcase struct {
		name string
		raw  string
		want want
	}

	tests := [...]testcase{
		{
			name: "student ref",
			raw:  "T123",
			want: want{ref: Ref{Institution: "T", ID: 123}},
		},
		{
			name: "teacher ref",
			raw:  "D45T",
			want: want{ref: Ref{Institution: "D", ID: 45, Teacher: true}},
		},
		{
			name: "second institution student",
			raw:  "D9000",
			want: want{ref: Ref{Institution: "D", ID: 9000}},
		},
		{
			name: "empty",
			raw:  "",
			want: want{err: true},
		},
		{
			name: "provisional marker only",
			raw:  "T",
			want: want{err: true},
		},
		{
			name: "unknown institution",
			raw:  "X123",
			want: want{err: true},
		},
		{
			name: "no digits",
			raw:  "TT",
			want: want{err: true},
		},
		{
			name: "garbage id",
			raw:  "T12a3",
			want: want{err: true},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			ref, err := ParseRef(tt.raw)
			if tt.want.err {
				require.Error(t, err)
				return
			}

			require.NoError(t, err)
			require.Equal(t, tt.want.ref, ref)
		})
	}
}

func TestRef_String_RoundTrip(t *testing.T) {
	refs := [...]Ref{
		{Institution: "T", ID: 1},
		{Institution: "D", ID: 321, Teacher: true},
		{Institution: "T", ID: 0},
	}

	for _, ref := range refs {
		parsed, err := ParseRef(ref.String())
		require.NoError(t, err)
		require.Equal(t, ref, parsed)
	}
}
