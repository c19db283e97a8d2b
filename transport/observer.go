// SPDX-License-Identifier: MIT

package transport

import log "github.com/sirupsen/logrus"

// LogObserver returns options that report allocation steps and permuted
// intermediate plans to logger at debug level. Nothing is formatted when
// debug logging is disabled.
func LogObserver(logger log.FieldLogger) []Option {
	enabled := func() bool {
		switch l := logger.(type) {
		case *log.Logger:
			return l.IsLevelEnabled(log.DebugLevel)
		case *log.Entry:
			return l.Logger.IsLevelEnabled(log.DebugLevel)
		default:
			return true
		}
	}

	return []Option{
		WithOnAllocate(func(i, j int, amount float64) {
			if !enabled() {
				return
			}
			logger.WithFields(log.Fields{
				"row":    i,
				"col":    j,
				"amount": amount,
			}).Debug("allocated cell")
		}),
		WithOnPermuted(func(permuted *Plan, rowPerm, colPerm Permutation) {
			if !enabled() {
				return
			}
			logger.WithFields(log.Fields{
				"rowPerm": rowPerm,
				"colPerm": colPerm,
				"plan":    permuted.ToSlices(),
			}).Debug("permuted plan")
		}),
	}
}
