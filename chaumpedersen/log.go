package chaumpedersen

import "github.com/sirupsen/logrus"

var Logger = logrus.StandardLogger()
