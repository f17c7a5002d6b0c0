// Copyright 2026 The Fornjot Go Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

// Package services ties the object stores, the validation configuration,
// and logging together into one modeling session.
package services

import (
	"go.uber.org/zap"

	"github.com/Jzow/Fornjot/objects"
)

// Services is one modeling session. Everything in it is single-threaded;
// the stores live exactly as long as the session and nothing is persisted.
type Services struct {
	// Objects are the object stores of the session.
	Objects *objects.Objects

	// Config is the validation configuration used by [Services.Validate].
	Config *objects.ValidationConfig

	logger *zap.Logger
}

// New returns a new session with the default validation configuration and
// no logging.
func New() *Services {
	return NewWithLogger(zap.NewNop())
}

// NewWithLogger returns a new session that logs through the given logger.
func NewWithLogger(logger *zap.Logger) *Services {
	return &Services{
		Objects: objects.New(),
		Config:  objects.DefaultValidationConfig(),
		logger:  logger,
	}
}

// Validate validates the given object against the session's configuration,
// logging every defect found, and returns them all.
func (s *Services) Validate(obj objects.Validatable) []error {
	errs := obj.Validate(s.Config)
	for _, err := range errs {
		s.logger.Warn("validation defect",
			zap.String("object", objectName(obj)),
			zap.Error(err))
	}
	if len(errs) == 0 {
		s.logger.Debug("object is valid",
			zap.String("object", objectName(obj)))
	}
	return errs
}

func objectName(obj objects.Validatable) string {
	switch obj.(type) {
	case objects.Surface:
		return "surface"
	case objects.GlobalVertex:
		return "global vertex"
	case objects.SurfaceVertex:
		return "surface vertex"
	case objects.GlobalEdge:
		return "global edge"
	case objects.HalfEdge:
		return "half-edge"
	case objects.Cycle:
		return "cycle"
	case objects.Face:
		return "face"
	case objects.Shell:
		return "shell"
	case objects.Sketch:
		return "sketch"
	case objects.Solid:
		return "solid"
	}
	return "object"
}
