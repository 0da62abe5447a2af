package middleware_test

import "github.com/sirupsen/logrus"

func testLogger() *logrus.Logger {
	l := logrus.New()
	l.SetLevel(logrus.ErrorLevel)

	return l
}
