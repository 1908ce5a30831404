package registration

import (
	"context"
	"fmt"
	"regexp"
	"strings"

	"github.com/google/uuid"

	"github.com/voltkart/storefront-backend/pkg/config"
	"github.com/voltkart/storefront-backend/pkg/enums"
	pkgerrors "github.com/voltkart/storefront-backend/pkg/errors"
	"github.com/voltkart/storefront-backend/pkg/logger"
)

var (
	emailPattern    = regexp.MustCompile(`^[^\s@]+@[^\s@]+\.[^\s@]+$`)
	nonDigitPattern = regexp.MustCompile(`\D`)
)

// Submission is a lead-generation form entry. Uploads are carried as
// declared file names only; no file content crosses this API.
type Submission struct {
	Name                     string         `json:"name"`
	Phone                    string         `json:"phone"`
	Email                    string         `json:"email,omitempty"`
	Address                  string         `json:"address"`
	HelpType                 enums.HelpType `json:"help_type"`
	Description              string         `json:"description,omitempty"`
	WebsiteDescription       string         `json:"website_description,omitempty"`
	CustomizationDescription string         `json:"customization_description,omitempty"`
	ReferencePhotoName       string         `json:"reference_photo_name,omitempty"`
	AddressProofName         string         `json:"address_proof_name"`
	CaptchaID                string         `json:"captcha_id"`
	CaptchaAnswer            string         `json:"captcha_answer"`
	AgreeToTerms             bool           `json:"agree_to_terms"`
}

// Receipt acknowledges an accepted submission.
type Receipt struct {
	SubmissionID string `json:"submission_id"`
}

// Service issues captcha challenges and accepts registration forms.
type Service interface {
	NewCaptcha(ctx context.Context) (*Challenge, error)
	Submit(ctx context.Context, submission Submission) (*Receipt, error)
}

type service struct {
	captchas CaptchaStore
	cfg      config.CaptchaConfig
	logg     *logger.Logger
}

// NewService builds a registration service over the provided captcha store.
func NewService(captchas CaptchaStore, cfg config.CaptchaConfig, logg *logger.Logger) (Service, error) {
	if captchas == nil {
		return nil, fmt.Errorf("captcha store required")
	}
	if logg == nil {
		return nil, fmt.Errorf("logger required")
	}
	return &service{captchas: captchas, cfg: cfg, logg: logg}, nil
}

// NewCaptcha mints and stores a fresh challenge. Refreshing simply
// issues a new one; abandoned challenges expire on their own.
func (s *service) NewCaptcha(ctx context.Context) (*Challenge, error) {
	challenge, err := newChallenge(s.cfg.Length)
	if err != nil {
		return nil, pkgerrors.Wrap(pkgerrors.CodeInternal, err, "issuing captcha")
	}
	if err := s.captchas.Put(ctx, challenge.ID, challenge.Text, s.cfg.TTL); err != nil {
		return nil, pkgerrors.Wrap(pkgerrors.CodeInternal, err, "storing captcha")
	}
	return challenge, nil
}

// Submit validates the form, consumes the captcha, and acknowledges the
// lead. Submissions are logged, not durably stored.
func (s *service) Submit(ctx context.Context, submission Submission) (*Receipt, error) {
	if err := validateSubmission(&submission); err != nil {
		return nil, err
	}

	text, ok, err := s.captchas.Take(ctx, submission.CaptchaID)
	if err != nil {
		return nil, pkgerrors.Wrap(pkgerrors.CodeInternal, err, "verifying captcha")
	}
	if !ok {
		return nil, pkgerrors.New(pkgerrors.CodeValidation, "captcha expired or already used").
			WithDetails(map[string]string{"captcha_answer": "request a new captcha"})
	}
	if !strings.EqualFold(text, strings.TrimSpace(submission.CaptchaAnswer)) {
		return nil, pkgerrors.New(pkgerrors.CodeValidation, "captcha answer does not match").
			WithDetails(map[string]string{"captcha_answer": "captcha answer does not match"})
	}

	receipt := &Receipt{SubmissionID: uuid.NewString()}
	s.logg.Info(s.logg.WithFields(ctx, map[string]any{
		"submission_id": receipt.SubmissionID,
		"help_type":     string(submission.HelpType),
		"name":          submission.Name,
		"phone":         submission.Phone,
	}), "registration submitted")
	return receipt, nil
}

func validateSubmission(submission *Submission) error {
	submission.Name = strings.TrimSpace(submission.Name)
	submission.Phone = nonDigitPattern.ReplaceAllString(submission.Phone, "")
	submission.Email = strings.TrimSpace(submission.Email)
	submission.Address = strings.TrimSpace(submission.Address)

	details := map[string]string{}
	if submission.Name == "" {
		details["name"] = "name is required"
	}
	if len(submission.Phone) != 10 {
		details["phone"] = "phone must contain exactly 10 digits"
	}
	if submission.Email != "" && !emailPattern.MatchString(submission.Email) {
		details["email"] = "email is not well-formed"
	}
	if submission.Address == "" {
		details["address"] = "address is required"
	}
	if !submission.HelpType.IsValid() {
		details["help_type"] = "unknown help type"
	}

	switch submission.HelpType {
	case enums.HelpTypeOthers:
		if strings.TrimSpace(submission.Description) == "" {
			details["description"] = "description is required for this help type"
		}
	case enums.HelpTypeMakeWebsites:
		if strings.TrimSpace(submission.WebsiteDescription) == "" {
			details["website_description"] = "website description is required"
		}
	case enums.HelpTypeCustomizeThings:
		if strings.TrimSpace(submission.CustomizationDescription) == "" {
			details["customization_description"] = "customization description is required"
		}
		if strings.TrimSpace(submission.ReferencePhotoName) == "" {
			details["reference_photo_name"] = "reference photo is required"
		}
	}

	if strings.TrimSpace(submission.AddressProofName) == "" {
		details["address_proof_name"] = "address proof document is required"
	}
	if strings.TrimSpace(submission.CaptchaID) == "" {
		details["captcha_id"] = "captcha id is required"
	}
	if strings.TrimSpace(submission.CaptchaAnswer) == "" {
		details["captcha_answer"] = "captcha answer is required"
	}
	if !submission.AgreeToTerms {
		details["agree_to_terms"] = "terms must be accepted"
	}

	if len(details) > 0 {
		return pkgerrors.New(pkgerrors.CodeValidation, "invalid registration form").WithDetails(details)
	}
	return nil
}
