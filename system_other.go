//go:build !((linux && cgo) || (darwin && cgo) || windows)

package locale

import "errors"

const systemBackend = "none"

var errNoBackend = errors.New("no native locale backend in this build")

func systemNumeric(id string) (Numeric, error) {
	return Numeric{}, newError("", id, KindUnsupported, errNoBackend)
}

func systemTime(id string) (Time, error) {
	return Time{}, newError("", id, KindUnsupported, errNoBackend)
}
