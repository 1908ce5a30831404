package controllers

import (
	"net/http"

	"github.com/voltkart/storefront-backend/api/responses"
	"github.com/voltkart/storefront-backend/api/validators"
	registrationsvc "github.com/voltkart/storefront-backend/internal/registration"
	"github.com/voltkart/storefront-backend/pkg/enums"
	pkgerrors "github.com/voltkart/storefront-backend/pkg/errors"
	"github.com/voltkart/storefront-backend/pkg/logger"
)

type registerRequest struct {
	Name                     string `json:"name" validate:"required"`
	Phone                    string `json:"phone" validate:"required"`
	Email                    string `json:"email,omitempty"`
	Address                  string `json:"address" validate:"required"`
	HelpType                 string `json:"help_type" validate:"required"`
	Description              string `json:"description,omitempty"`
	WebsiteDescription       string `json:"website_description,omitempty"`
	CustomizationDescription string `json:"customization_description,omitempty"`
	ReferencePhotoName       string `json:"reference_photo_name,omitempty"`
	AddressProofName         string `json:"address_proof_name" validate:"required"`
	CaptchaID                string `json:"captcha_id" validate:"required"`
	CaptchaAnswer            string `json:"captcha_answer" validate:"required"`
	AgreeToTerms             bool   `json:"agree_to_terms"`
}

// RegisterCaptcha issues a fresh captcha challenge.
func RegisterCaptcha(svc registrationsvc.Service, logg *logger.Logger) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		if svc == nil {
			responses.WriteError(r.Context(), logg, w, pkgerrors.New(pkgerrors.CodeInternal, "registration service unavailable"))
			return
		}

		challenge, err := svc.NewCaptcha(r.Context())
		if err != nil {
			responses.WriteError(r.Context(), logg, w, err)
			return
		}
		responses.WriteSuccess(w, challenge)
	}
}

// RegisterSubmit accepts a lead-generation form submission.
func RegisterSubmit(svc registrationsvc.Service, logg *logger.Logger) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		if svc == nil {
			responses.WriteError(r.Context(), logg, w, pkgerrors.New(pkgerrors.CodeInternal, "registration service unavailable"))
			return
		}

		var payload registerRequest
		if err := validators.DecodeJSONBody(r, &payload); err != nil {
			responses.WriteError(r.Context(), logg, w, err)
			return
		}

		receipt, err := svc.Submit(r.Context(), registrationsvc.Submission{
			Name:                     payload.Name,
			Phone:                    payload.Phone,
			Email:                    payload.Email,
			Address:                  payload.Address,
			HelpType:                 enums.HelpType(payload.HelpType),
			Description:              payload.Description,
			WebsiteDescription:       payload.WebsiteDescription,
			CustomizationDescription: payload.CustomizationDescription,
			ReferencePhotoName:       payload.ReferencePhotoName,
			AddressProofName:         payload.AddressProofName,
			CaptchaID:                payload.CaptchaID,
			CaptchaAnswer:            payload.CaptchaAnswer,
			AgreeToTerms:             payload.AgreeToTerms,
		})
		if err != nil {
			responses.WriteError(r.Context(), logg, w, err)
			return
		}
		responses.WriteSuccessStatus(w, http.StatusCreated, receipt)
	}
}
