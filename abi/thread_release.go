//go:build !gldebug || !linux

package abi

func bindThread(bool) {}

func checkThread() {}
