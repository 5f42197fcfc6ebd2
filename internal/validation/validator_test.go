// Statdash - National Statistics Indicator Dashboard
// Copyright 2026 Tom F. (tomtom215)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/tomtom215/statdash

package validation

import "testing"

type testRequest struct {
	Indicator string `query:"indicator" validate:"required,inegi_indicator"`
	Geography string `query:"geography" validate:"omitempty,inegi_geography"`
	Chart     string `query:"chart" validate:"omitempty,oneof=line bar area"`
}

func TestValidateStruct(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name        string
		req         testRequest
		wantErr     bool
		wantField   string
		wantMessage string
	}{
		{name: "valid", req: testRequest{Indicator: "6200093912", Geography: "0700", Chart: "bar"}},
		{name: "geography optional", req: testRequest{Indicator: "216064"}},
		{
			name:        "missing indicator",
			req:         testRequest{Geography: "00"},
			wantErr:     true,
			wantField:   "indicator",
			wantMessage: "The 'indicator' parameter is required",
		},
		{
			name:        "non numeric indicator",
			req:         testRequest{Indicator: "../etc"},
			wantErr:     true,
			wantField:   "indicator",
			wantMessage: "The 'indicator' parameter must be an INEGI indicator id (1 to 20 digits)",
		},
		{
			name:      "geography too short",
			req:       testRequest{Indicator: "1", Geography: "7"},
			wantErr:   true,
			wantField: "geography",
		},
		{
			name:        "unknown chart",
			req:         testRequest{Indicator: "1", Chart: "pie"},
			wantErr:     true,
			wantField:   "chart",
			wantMessage: "The 'chart' parameter must be one of: line bar area",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()
			verr := ValidateStruct(&tt.req)
			if !tt.wantErr {
				if verr != nil {
					t.Fatalf("ValidateStruct() = %v, want nil", verr)
				}
				return
			}
			if verr == nil {
				t.Fatal("ValidateStruct() = nil, want error")
			}
			if got := verr.Errors()[0].Field(); got != tt.wantField {
				t.Errorf("Field() = %q, want %q", got, tt.wantField)
			}
			apiErr := verr.ToAPIError()
			if apiErr.Code != "VALIDATION_ERROR" {
				t.Errorf("Code = %q", apiErr.Code)
			}
			if tt.wantMessage != "" && apiErr.Message != tt.wantMessage {
				t.Errorf("Message = %q, want %q", apiErr.Message, tt.wantMessage)
			}
		})
	}
}
