package rsakex

import (
	"github.com/privacybydesign/rsakex/strongprime"
	"github.com/sirupsen/logrus"
)

var Logger *logrus.Logger

func init() {
	Logger = logrus.StandardLogger()
	strongprime.Logger = Logger
}
