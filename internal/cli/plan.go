// Copyright (c) 2024-2025 Jesse Morgan / Morgan Forge
// SPDX-License-Identifier: AGPL-3.0-or-later

// plan.go - "clowngpt plan" command handler.
package cli

import (
	"context"
	"fmt"
	"os"

	"github.com/jeranaias/clowngpt-tui/internal/model"
)

// HandlePlan shows or switches the account plan.
func HandlePlan(args Args) {
	rt, err := NewRuntime(args)
	if err != nil {
		fail(err)
	}
	requireAuth(rt)
	ctx := context.Background()

	switch args.Subcommand {
	case "", "show":
		plan, err := rt.Client.GetPlan(ctx)
		if err != nil {
			fail(err)
		}
		if !plan.Valid() {
			plan = model.PlanFree
		}
		fmt.Printf("plan: %s\n", plan)

	case "set":
		target := model.Plan(args.ConfigVal)
		if !target.Valid() {
			fail(fmt.Errorf("unknown plan %q (choose: %s, %s, %s)",
				args.ConfigVal, model.PlanFree, model.PlanPro, model.PlanEnterprise))
		}
		plan, err := rt.Client.UpdatePlan(ctx, target)
		if err != nil {
			fail(err)
		}
		fmt.Printf("plan: %s\n", plan)

	default:
		fmt.Fprintf(os.Stderr, "Unknown plan subcommand: %s\n", args.Subcommand)
		fmt.Fprintln(os.Stderr, "Usage: clowngpt plan [show|set PLAN]")
		os.Exit(1)
	}
}
