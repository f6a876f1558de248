package billy

// defaultNameMax is NAME_MAX on every filesystem this package targets when the
// kernel does not report a value.
const defaultNameMax = 255
