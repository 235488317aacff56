package planner

import "context"

// UseCase assembles what a view needs to render the appointment page.
type UseCase interface {
	// Overview joins the held appointments with their checklist and generation state.
	Overview(ctx context.Context) Overview
}
