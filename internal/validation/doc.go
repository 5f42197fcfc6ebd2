// Statdash - National Statistics Indicator Dashboard
// Copyright 2026 Tom F. (tomtom215)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/tomtom215/statdash

// Package validation validates HTTP request parameters with
// go-playground/validator v10.
//
//	type seriesRequest struct {
//	    Indicator string `query:"indicator" validate:"required,inegi_indicator"`
//	    Geography string `query:"geography" validate:"omitempty,inegi_geography"`
//	}
//
//	if verr := validation.ValidateStruct(&req); verr != nil {
//	    apiErr := verr.ToAPIError()
//	    // 400 with apiErr.Message, e.g. "The 'indicator' parameter is required"
//	}
package validation
