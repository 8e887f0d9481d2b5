//go:build linux && cgo

package hashing

/*
#cgo LDFLAGS: -lcrypt
#define _GNU_SOURCE
#include <crypt.h>
#include <stdlib.h>
#include <string.h>

static void wipe_free(void *p, size_t n) {
	if (p == NULL) {
		return;
	}
	memset(p, 0, n);
	free(p);
}
*/
import "C"

import (
	"strings"
	"unsafe"
)

// UnixCrypt hashes password with the system crypt(3) library.
//
// salt is handed to the library unchanged: a two character salt selects
// traditional DES crypt, a "$id$..." prefix selects the corresponding modern
// scheme.  Salt validation is entirely the library's.
//
// When the library returns NULL or a failure token ("*0", "*1") the result is
// an empty string and an error wrapping [ErrNativeFailure].  The empty string
// never compares equal to a stored digest under [SafeEqual].
func UnixCrypt(password, salt string) (string, error) {
	cPassword := C.CString(password)
	defer C.wipe_free(unsafe.Pointer(cPassword), C.size_t(len(password)))
	cSalt := C.CString(salt)
	defer C.free(unsafe.Pointer(cSalt))

	// crypt_r keeps its working state here instead of in a static buffer,
	// so concurrent calls do not share memory.
	data := (*C.struct_crypt_data)(C.calloc(1, C.sizeof_struct_crypt_data))
	if data == nil {
		return "", newHashError(AlgUnixCrypt, ErrNativeFailure, "allocating crypt_data")
	}
	defer C.wipe_free(unsafe.Pointer(data), C.sizeof_struct_crypt_data)

	out := C.crypt_r(cPassword, cSalt, data)
	if out == nil {
		return "", newHashError(AlgUnixCrypt, ErrNativeFailure, "crypt_r returned NULL")
	}
	digest := C.GoString(out)
	if strings.HasPrefix(digest, "*") {
		return "", newHashError(AlgUnixCrypt, ErrNativeFailure, "crypt_r returned failure token %q", digest)
	}
	return digest, nil
}
