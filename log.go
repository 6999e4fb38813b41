package egcrypto

import (
	"github.com/privacybydesign/egcrypto/chaumpedersen"
	"github.com/privacybydesign/egcrypto/elgamal"
	"github.com/privacybydesign/egcrypto/group"
	"github.com/privacybydesign/egcrypto/schnorr"
	"github.com/sirupsen/logrus"
)

var Logger = logrus.StandardLogger()

// SetLogger makes this package and all its subpackages log to l.
func SetLogger(l *logrus.Logger) {
	Logger = l
	group.Logger = l
	elgamal.Logger = l
	schnorr.Logger = l
	chaumpedersen.Logger = l
}
