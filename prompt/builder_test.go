package prompt

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestBuilder(t *testing.T) {
	testCases := []struct {
		description string
		build       func() string
		expect      string
	}{
		{
			description: "all parts present",
			build: func() string {
				return New("Opening.").
					Line("Problem: slow build").
					Optional("Context", "monorepo").
					When(true, "Look at the code.").
					Close("Closing.")
			},
			expect: "Opening.\n\nProblem: slow build\n\nContext: monorepo\n\nLook at the code.\n\nClosing.",
		},
		{
			description: "absent optionals leave no trace",
			build: func() string {
				return New("Opening.").
					Line("Problem: slow build").
					Optional("Context", "").
					When(false, "Look at the code.").
					Close("Closing.")
			},
			expect: "Opening.\n\nProblem: slow build\n\nClosing.",
		},
	}
	for _, testCase := range testCases {
		actual := testCase.build()
		assert.Equal(t, testCase.expect, actual, testCase.description)
		assert.Equal(t, actual, testCase.build(), testCase.description)
		assert.NotContains(t, actual, "\n\n\n", testCase.description)
	}
}
