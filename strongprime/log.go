package strongprime

import "github.com/sirupsen/logrus"

// Logger receives debug output of the prime search. The rsakex package points it at its own
// Logger on initialization.
var Logger = logrus.StandardLogger()
