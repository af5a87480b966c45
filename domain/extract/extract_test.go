package extract

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func Test_LeadingInteger(t *testing.T) {
	tests := []struct {
		name  string
		text  string
		want  int64
		found bool
	}{
		{name: "plain number", text: "42", want: 42, found: true},
		{name: "surrounding spaces", text: "  7  ", want: 7, found: true},
		{name: "bold markup", text: "**42**", want: 42, found: true},
		{name: "italic markup", text: "_3_", want: 3, found: true},
		{name: "strikethrough markup", text: "~~12~~", want: 12, found: true},
		{name: "code markup", text: "`99`", want: 99, found: true},
		{name: "mixed markup run", text: "**_5_**", want: 5, found: true},
		{name: "number then trailing text", text: "3 <:emote:12345>", want: 3, found: true},
		{name: "number glued to text", text: "12go", want: 12, found: true},
		{name: "zero", text: "0", want: 0, found: true},
		{name: "words", text: "fourty two", found: false},
		{name: "empty", text: "", found: false},
		{name: "only markup", text: "****", found: false},
		{name: "number mid string", text: "the answer is 42", found: false},
		{name: "negative sign", text: "-5", found: false},
		{name: "max int64", text: "9223372036854775807", want: 9223372036854775807, found: true},
		{name: "overflow", text: "9223372036854775808", found: false},
		{name: "absurdly long digit run", text: "99999999999999999999999999", found: false},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			req := require.New(t)
			n, found := LeadingInteger(tt.text)
			req.Equal(tt.found, found)
			if tt.found {
				req.Equal(tt.want, n)
			}
		})
	}
}

func Test_HasSigilPrefix(t *testing.T) {
	assert.True(t, HasSigilPrefix("<@123456> 3"))
	assert.True(t, HasSigilPrefix("<#987> hello"))
	assert.True(t, HasSigilPrefix("<:emote:12345> 3"))
	assert.True(t, HasSigilPrefix("<a:wave:555>"))
	assert.True(t, HasSigilPrefix(":shrug:"))
	assert.True(t, HasSigilPrefix("  <@123> padded"))

	assert.False(t, HasSigilPrefix("3 <:emote:12345>"))
	assert.False(t, HasSigilPrefix("42"))
	assert.False(t, HasSigilPrefix("**42**"))
	assert.False(t, HasSigilPrefix(""))
}
