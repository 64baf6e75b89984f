package messaging

import (
	"context"
	"errors"
	"fmt"

	"github.com/KirkDiggler/surety/internal/models"
	"github.com/KirkDiggler/surety/internal/random"
)

// service implements the Service interface
type service struct {
	// Roller for selecting random messages
	roller random.Roller
}

// NewService creates a new messaging service
func NewService(config *ServiceConfig) (Service, error) {
	var roller random.Roller
	if config != nil && config.Roller != nil {
		roller = config.Roller
	} else {
		roller = random.New(nil)
	}

	return &service{
		roller: roller,
	}, nil
}

// GetContractBriefing returns the private message that hands a member their target
func (s *service) GetContractBriefing(ctx context.Context, input *GetContractBriefingInput) (*GetContractBriefingOutput, error) {
	if input == nil {
		return nil, errors.New("input cannot be nil")
	}
	if input.TargetName == "" {
		return nil, errors.New("target name cannot be empty")
	}

	tone := input.PreferredTone
	if tone == "" {
		tone = ToneNoir
	}

	var titles, messages []string
	switch tone {
	case ToneFunny:
		titles = []string{
			"You've Got Mail (It's a Hit)",
			"Assignment Unlocked",
		}
		messages = []string{
			"Good news: you have a new best friend. Bad news for them: it's **%s**.",
			"Your homework tonight is **%s**. Show your work.",
			"**%s** is it. Tag, and please take a photo.",
		}
	case ToneNeutral:
		titles = []string{"New Contract"}
		messages = []string{
			"Your target for this cycle is **%s**.",
		}
	default:
		titles = []string{
			"A Name In The Envelope",
			"The Broker Has Spoken",
			"Contract Issued",
		}
		messages = []string{
			"The city's quiet tonight. Keep it that way until you find **%s**.",
			"Someone paid good money for this. Your mark is **%s**.",
			"One name, one job. **%s**. Don't make it personal.",
			"The envelope was thin. Inside, a single name: **%s**.",
		}
	}

	message := fmt.Sprintf(pick(s.roller, messages), input.TargetName)

	if input.Kind == models.ContractKindUnique {
		message += "\nNobody else in your cohort holds this name."
	}
	if input.HasProof {
		message += "\nTheir latest pledge photo is attached."
	} else {
		message += "\nNo photo on file. You'll have to work from the name."
	}

	return &GetContractBriefingOutput{
		Title:   pick(s.roller, titles),
		Message: message,
		Tone:    tone,
	}, nil
}

// GetStateChangeMessage returns a line announcing a member's new state
func (s *service) GetStateChangeMessage(ctx context.Context, input *GetStateChangeMessageInput) (*GetStateChangeMessageOutput, error) {
	if input == nil {
		return nil, errors.New("input cannot be nil")
	}

	name := input.MemberName
	if name == "" {
		name = "Someone"
	}

	if input.Overridden {
		return &GetStateChangeMessageOutput{
			Message: fmt.Sprintf("Set %s to %s state", name, input.Current),
		}, nil
	}

	var messages []string
	switch input.Current {
	case models.PlayerStateNewMember:
		if input.Previous == models.PlayerStateActiveMember {
			messages = []string{
				"%s went quiet for too long and is back on probation.",
				"Radio silence from %s. Back to the new member desk.",
			}
		} else {
			messages = []string{
				"%s posted their pledge. Welcome to probation.",
				"The pledge from %s checks out. Probation starts now.",
			}
		}
	case models.PlayerStateActiveMember:
		if input.Previous == models.PlayerStateEliminated {
			messages = []string{
				"%s has served their time and is back in the game.",
				"The cool-down is over. %s walks the streets again.",
			}
		} else {
			messages = []string{
				"%s is now an active member. Watch your back.",
				"Probation's over for %s. Welcome to the game.",
			}
		}
	case models.PlayerStateEliminated:
		messages = []string{
			"%s has been eliminated. Hit confirmed.",
			"Photo evidence doesn't lie. %s is out.",
			"%s took one for the team. Eliminated.",
		}
	default:
		messages = []string{
			"%s is now in the %s state.",
		}
		return &GetStateChangeMessageOutput{
			Message: fmt.Sprintf(pick(s.roller, messages), name, input.Current),
		}, nil
	}

	return &GetStateChangeMessageOutput{
		Message: fmt.Sprintf(pick(s.roller, messages), name),
	}, nil
}

// GetCycleSummaryMessage returns a summary of a contract cycle for operators
func (s *service) GetCycleSummaryMessage(ctx context.Context, input *GetCycleSummaryMessageInput) (*GetCycleSummaryMessageOutput, error) {
	if input == nil {
		return nil, errors.New("input cannot be nil")
	}

	if input.Skipped {
		return &GetCycleSummaryMessageOutput{
			Title: "Cycle Skipped",
			Message: fmt.Sprintf("Only %d eligible member(s) with proof on file. At least 2 are needed.",
				input.NewCohort+input.ActiveCohort),
		}, nil
	}

	message := fmt.Sprintf("Issued %d contract(s) to %d new and %d active member(s).",
		input.Contracts, input.NewCohort, input.ActiveCohort)
	if input.Undelivered > 0 {
		message += fmt.Sprintf("\n%d could not be delivered by direct message.", input.Undelivered)
	}

	return &GetCycleSummaryMessageOutput{
		Title:   "Contracts Distributed",
		Message: message,
	}, nil
}

// GetErrorMessage returns a user-friendly error message
func (s *service) GetErrorMessage(ctx context.Context, input *GetErrorMessageInput) (*GetErrorMessageOutput, error) {
	if input == nil {
		return nil, errors.New("input cannot be nil")
	}

	tone := input.PreferredTone
	if tone == "" {
		tone = ToneFunny
	}

	var messages []string
	switch input.ErrorType {
	case ErrorTypeUnknownState:
		messages = []string{
			"That state doesn't exist. Try /state list.",
			"Never heard of that state. /state list knows the real ones.",
		}
	case ErrorTypeMissingPermission:
		messages = []string{
			"You need the Manage Roles permission for that.",
			"Nice try. That one's for the people with Manage Roles.",
		}
	case ErrorTypeNoContract:
		messages = []string{
			"You don't have a contract right now. Post your pledge and wait for the next cycle.",
			"No envelope with your name on it yet. Keep your pledge photo current.",
		}
	case ErrorTypeNotEnoughMembers:
		messages = []string{
			"Not enough members with proof on file to run a cycle.",
			"It takes two to play. Not enough eligible members yet.",
		}
	case ErrorTypePoolExhausted:
		messages = []string{
			"Not enough active members to give every new member their own target. Nothing was sent.",
			"The target pool ran dry before every new member had a name. Cycle cancelled.",
		}
	case ErrorTypeUnresolvedMember:
		messages = []string{
			"Couldn't work out that member's state from their roles.",
			"That member's roles don't match any state.",
		}
	case ErrorTypeNoProof:
		messages = []string{
			"No pledge photo on file. Post one in the proof channel.",
			"The broker has no picture of you. Fix that in the proof channel.",
		}
	default:
		messages = []string{
			"Something went wrong! Try again later.",
			"The broker dropped the envelope. Try again.",
		}
	}

	return &GetErrorMessageOutput{
		Message: pick(s.roller, messages),
		Tone:    tone,
	}, nil
}

func pick(roller random.Roller, messages []string) string {
	message, _, _ := random.Pick(roller, messages)
	return message
}
