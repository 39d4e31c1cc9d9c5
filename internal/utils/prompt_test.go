package utils

import (
	"os"
	"testing"
)

func TestPrompt(t *testing.T) {
	testCases := []struct {
		name           string
		args           []string
		stdin          string
		pipe           bool
		expectedPrompt string
		expectedError  bool
	}{
		{
			name:          "No arguments and no stdin",
			args:          []string{},
			expectedError: true,
		},
		{
			name:           "Arguments only",
			args:           []string{"which", "schemes?"},
			expectedPrompt: "which schemes?",
		},
		{
			name:           "Stdin only",
			pipe:           true,
			stdin:          "input from stdin\n",
			expectedPrompt: "input from stdin",
		},
		{
			name:           "Arguments and stdin",
			args:           []string{"summarize:"},
			pipe:           true,
			stdin:          "input from stdin",
			expectedPrompt: "summarize: input from stdin",
		},
		{
			name:          "Empty pipe and no arguments",
			args:          []string{},
			pipe:          true,
			stdin:         "   ",
			expectedError: true,
		},
	}

	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			if tc.pipe {
				oldStdin := os.Stdin
				t.Cleanup(func() { os.Stdin = oldStdin })
				r, w, err := os.Pipe()
				if err != nil {
					t.Fatal(err)
				}
				os.Stdin = r
				_, err = w.WriteString(tc.stdin)
				if err != nil {
					t.Fatal(err)
				}
				w.Close()
			}

			prompt, err := Prompt(tc.args)

			if tc.expectedError && err == nil {
				t.Error("Expected an error, but got nil")
			} else if !tc.expectedError && err != nil {
				t.Errorf("Unexpected error: %v", err)
			}

			if prompt != tc.expectedPrompt {
				t.Errorf("Prompt mismatch. Expected: %q, Got: %q", tc.expectedPrompt, prompt)
			}
		})
	}
}
