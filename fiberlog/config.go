package fiberlog

import "github.com/sirupsen/logrus"

// Config selects the logger the access log writes to and the request
// fields it records. A nil Logger falls back to the logrus standard
// logger.
type Config struct {
	Logger *logrus.Logger
	Tags   []string
}

// ConfigDefault records the fields useful without request bodies.
var ConfigDefault Config = Config{
	Logger: nil,
	Tags: []string{
		TagStatus,
		TagLatency,
		TagMethod,
		TagPath,
		TagIP,
	},
}
