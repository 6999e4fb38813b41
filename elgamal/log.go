package elgamal

import "github.com/sirupsen/logrus"

var Logger = logrus.StandardLogger()
