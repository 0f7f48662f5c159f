package inbound

import (
	"context"
	"errors"
	"fmt"
	"strings"

	"github.com/samber/lo"
	"github.com/shandysiswandi/otpvault/internal/pkg/goerror"
	"github.com/shandysiswandi/otpvault/internal/pkg/instrument"
	"github.com/shandysiswandi/otpvault/internal/vault/entity"
	"github.com/shandysiswandi/otpvault/internal/vault/usecase"
	"go.opentelemetry.io/otel/trace"
)

const helpText = "Welcome to the Real-Time OTP Bot!\n\n" +
	"Available commands:\n" +
	"/start - Show this message\n" +
	"/getotp <name> - Get OTP code for a service\n" +
	"/addcode <name> <secret_key> - Add a new OTP code\n" +
	"/deletecode <name> - Delete an OTP code\n" +
	"/listcodes - List all stored OTP codes"

const (
	usageGetOTP     = "Usage: /getotp <name>"
	usageAddCode    = "Usage: /addcode <name> <secret_key>"
	usageDeleteCode = "Usage: /deletecode <name>"

	replyStorageFailure = "Something went wrong. Please try again later."
	replyEmptyList      = "No OTP codes stored. Use /addcode to add one."
	replyInvalidKey     = "Invalid secret_key. It must be a valid Base32 string (A-Z, 2-7, and = only)."
)

// Processor turns chat commands into vault operations and user-facing replies.
//
// Dispatch never returns an error: every failure maps to a reply text, and an
// empty reply means the command is unknown and should be ignored.
type Processor struct {
	uc  uc
	ins instrument.Instrumentation
}

// NewProcessor constructs a command Processor.
func NewProcessor(uc uc, ins instrument.Instrumentation) *Processor {
	return &Processor{uc: uc, ins: ins}
}

// ParseMessage splits a raw chat message into its command and arguments.
// The leading slash is stripped and the command is lowercased; a message
// without a leading slash yields an empty command.
func ParseMessage(text string) (string, []string) {
	fields := strings.Fields(strings.TrimSpace(text))
	if len(fields) == 0 || !strings.HasPrefix(fields[0], "/") {
		return "", nil
	}

	command := strings.ToLower(strings.TrimPrefix(fields[0], "/"))
	return command, fields[1:]
}

func (p *Processor) startSpan(ctx context.Context, name string) (context.Context, trace.Span) {
	return p.ins.Tracer("vault.inbound.command").Start(ctx, name)
}

// Dispatch runs one command and returns the reply text.
func (p *Processor) Dispatch(ctx context.Context, command string, args []string) string {
	ctx, span := p.startSpan(ctx, "Dispatch")
	defer span.End()

	switch command {
	case "start":
		return helpText
	case "getotp":
		return p.getOTP(ctx, args)
	case "addcode":
		return p.addCode(ctx, args)
	case "deletecode":
		return p.deleteCode(ctx, args)
	case "listcodes":
		return p.listCodes(ctx)
	default:
		return ""
	}
}

func (p *Processor) getOTP(ctx context.Context, args []string) string {
	if len(args) < 1 {
		return usageGetOTP
	}
	name := entity.NormalizeName(args[0])

	out, err := p.uc.GetCode(ctx, usecase.GetCodeInput{Name: name})
	if err != nil {
		switch errorCode(err) {
		case goerror.CodeNotFound:
			return fmt.Sprintf("Service '%s' not found. Use /listcodes to see available services.", name)
		case goerror.CodeCorruptData:
			return fmt.Sprintf("Stored secret for '%s' is corrupted. Delete and re-add it.", name)
		default:
			return replyStorageFailure
		}
	}

	return fmt.Sprintf("Your real-time OTP code for %s is: %s", out.Name, out.Code)
}

func (p *Processor) addCode(ctx context.Context, args []string) string {
	if len(args) < 2 {
		return usageAddCode
	}
	name := entity.NormalizeName(args[0])

	out, err := p.uc.AddCode(ctx, usecase.AddCodeInput{Name: name, SecretKey: args[1]})
	if err != nil {
		switch errorCode(err) {
		case goerror.CodeInvalidInput, goerror.CodeInvalidFormat:
			return replyInvalidKey
		case goerror.CodeConflict:
			return fmt.Sprintf("Service '%s' already exists. Use /deletecode to remove it first.", name)
		default:
			return replyStorageFailure
		}
	}

	return fmt.Sprintf("OTP code for '%s' added successfully.", out.Name)
}

func (p *Processor) deleteCode(ctx context.Context, args []string) string {
	if len(args) < 1 {
		return usageDeleteCode
	}
	name := entity.NormalizeName(args[0])

	out, err := p.uc.DeleteCode(ctx, usecase.DeleteCodeInput{Name: name})
	if err != nil {
		if errorCode(err) == goerror.CodeNotFound {
			return fmt.Sprintf("Service '%s' not found. Use /listcodes to see available services.", name)
		}
		return replyStorageFailure
	}

	return fmt.Sprintf("OTP code for '%s' deleted successfully.", out.Name)
}

func (p *Processor) listCodes(ctx context.Context) string {
	out, err := p.uc.ListCodes(ctx)
	if err != nil {
		return replyStorageFailure
	}
	if len(out.Names) == 0 {
		return replyEmptyList
	}

	lines := lo.Map(out.Names, func(name string, _ int) string {
		return "- " + name
	})

	return "Stored OTP codes:\n" + strings.Join(lines, "\n")
}

func errorCode(err error) goerror.Code {
	var gerr *goerror.Error
	if errors.As(err, &gerr) {
		return gerr.Code()
	}
	return goerror.CodeInternal
}
