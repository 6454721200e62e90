//go:build !membound

package alloc

const name = "default"

func setup() {}
