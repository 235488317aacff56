package usecase

import (
	"context"
	"errors"
	"fmt"
	"strings"

	"adhd-planner/internal/checklist"
	"adhd-planner/internal/model"
	"adhd-planner/pkg/llmprovider"
)

// Generate prompts the backend once and installs the parsed checklist.
func (uc *implUseCase) Generate(ctx context.Context, input checklist.GenerateInput) (model.ChecklistEntry, error) {
	if input.AppointmentID == "" {
		return model.ChecklistEntry{}, checklist.ErrEmptyAppointmentID
	}
	if input.CurrentDate == "" {
		input.CurrentDate = uc.dateMath.FormatDate(uc.now())
	}

	prompt := checklist.BuildPrompt(input.Summary, input.CurrentDate)
	uc.l.Debugf(ctx, "checklist.usecase.Generate: appointment=%s prompt_length=%d", input.AppointmentID, len(prompt))

	resp, err := uc.llm.GenerateContent(ctx, llmprovider.UserPrompt(prompt))
	if err != nil {
		if errors.Is(err, llmprovider.ErrEmptyResponse) {
			return model.ChecklistEntry{}, fmt.Errorf("%w: %w", checklist.ErrMalformedResponse, err)
		}
		return model.ChecklistEntry{}, fmt.Errorf("%w: %w", checklist.ErrGenerationFailed, err)
	}

	raw := resp.Text()
	if strings.TrimSpace(raw) == "" {
		return model.ChecklistEntry{}, checklist.ErrMalformedResponse
	}

	entry, err := checklist.Parse(raw)
	if err != nil {
		return model.ChecklistEntry{}, err
	}

	uc.repo.Install(ctx, input.AppointmentID, entry)
	uc.l.Infof(ctx, "checklist.usecase.Generate: appointment=%s items=%d provider=%s",
		input.AppointmentID, len(entry.Items), resp.ProviderName)

	return entry, nil
}
