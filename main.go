// Copyright 2026 GymStack Ltd.
// SPDX-License-Identifier: AGPL-3.0

package main

import "github.com/gymstack/gym-service/cmd"

func main() {
	cmd.Execute()
}
