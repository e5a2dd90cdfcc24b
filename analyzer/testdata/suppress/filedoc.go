// The whole file opts out of the linter.
//
//nolint:augur
package suppress

func fileSuppressed() {
	acquire()
}
