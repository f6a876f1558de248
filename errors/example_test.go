package errors_test

import (
	"fmt"
	"io/fs"

	"github.com/jmgilman/go/filemgr/errors"
)

func ExampleNew() {
	err := errors.New(errors.CodeInvalidTarget, "cannot trash the trash can")
	fmt.Println(err.Error())
	// Output: [INVALID_TARGET] cannot trash the trash can
}

func ExampleWrap() {
	cause := &fs.PathError{Op: "open", Path: "/t/info/a.trashinfo", Err: fs.ErrNotExist}
	err := errors.Wrap(cause, errors.CodeNotFound, "sidecar missing")

	fmt.Println(errors.GetCode(err))
	fmt.Println(errors.Is(err, fs.ErrNotExist))
	// Output:
	// NOT_FOUND
	// true
}

func ExampleIsFatal() {
	fmt.Println(errors.IsFatal(errors.New(errors.CodePermissionDenied, "parent not writable")))
	fmt.Println(errors.IsFatal(errors.New(errors.CodeTrashUnavailable, "cannot create trash")))
	// Output:
	// false
	// true
}
