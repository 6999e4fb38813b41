package schnorr

import "github.com/sirupsen/logrus"

var Logger = logrus.StandardLogger()
