package mailservice

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestParseTemplate(t *testing.T) {
	template := &Template{}

	testCases := []struct {
		name         string
		templateName string
		data         any
		expectedErr  bool
	}{
		{
			name:         "success",
			templateName: "signup_notification.html",
			data: struct {
				Username string
			}{
				Username: "mluukkai",
			},
			expectedErr: false,
		},
		{
			name:         "invalid template name",
			templateName: "missing_template.html",
			data:         nil,
			expectedErr:  true,
		},
	}

	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			s, p, h, err := template.ParseTemplate(tc.templateName, tc.data)
			assert.Equal(t, tc.expectedErr, err != nil)

			if err == nil {
				assert.True(t, strings.Contains(s.String(), "mluukkai"))
				assert.True(t, strings.Contains(p.String(), "mluukkai"))
				assert.True(t, strings.Contains(h.String(), "mluukkai"))
			}
		})
	}
}
