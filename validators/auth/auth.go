package authValidator

import (
	"elearn/middleware"
	"strings"

	"github.com/go-playground/validator/v10"
	"github.com/gofiber/fiber/v2"
)

var validate = validator.New()

// RegisterRequest is the self-registration payload.
type RegisterRequest struct {
	FullName        string `json:"full_name" validate:"required"`
	Phone           string `json:"phone" validate:"required,min=8,max=20"`
	Password        string `json:"password" validate:"required,min=6"`
	ConfirmPassword string `json:"confirm_password" validate:"required"`
	ParentPhone     string `json:"parent_phone" validate:"required"`
	Governorate     string `json:"governorate" validate:"required"`
	Grade           string `json:"grade" validate:"required"`
	Branch          string `json:"branch"`
}

// Register validates the registration form. Errors are field-scoped so the
// client can re-render the form with a notice next to the offending input.
func Register() fiber.Handler {
	return func(c *fiber.Ctx) error {
		reqData := new(RegisterRequest)

		if err := c.BodyParser(reqData); err != nil {
			return middleware.JsonResponse(c, fiber.StatusBadRequest, false, "Invalid request body!", nil)
		}

		errors := make(map[string]string)

		if err := validate.Struct(reqData); err != nil {
			for _, fieldErr := range err.(validator.ValidationErrors) {
				switch fieldErr.Field() {
				case "FullName":
					errors["full_name"] = "Full name is required!"
				case "Phone":
					errors["phone"] = "A valid phone number is required!"
				case "Password":
					errors["password"] = "Password must be at least 6 characters long!"
				case "ConfirmPassword":
					errors["confirm_password"] = "Password confirmation is required!"
				case "ParentPhone":
					errors["parent_phone"] = "Parent phone number is required!"
				case "Governorate":
					errors["governorate"] = "Governorate is required!"
				case "Grade":
					errors["grade"] = "Grade is required!"
				}
			}
		}

		// The full name must be at least three words
		if errors["full_name"] == "" && len(strings.Fields(reqData.FullName)) < 3 {
			errors["full_name"] = "Full name must be at least three words!"
		}

		if errors["confirm_password"] == "" && reqData.Password != reqData.ConfirmPassword {
			errors["confirm_password"] = "Passwords do not match!"
		}

		if len(errors) > 0 {
			return middleware.ValidationErrorResponse(c, errors)
		}

		c.Locals("validatedRegister", reqData)
		return c.Next()
	}
}

// Login validates the login form.
func Login() fiber.Handler {
	return func(c *fiber.Ctx) error {
		reqData := new(struct {
			Phone    string `json:"phone"`
			Password string `json:"password"`
		})

		if err := c.BodyParser(reqData); err != nil {
			return middleware.JsonResponse(c, fiber.StatusBadRequest, false, "Invalid request body!", nil)
		}

		errors := make(map[string]string)

		if strings.TrimSpace(reqData.Phone) == "" {
			errors["phone"] = "Phone number is required!"
		}
		if reqData.Password == "" {
			errors["password"] = "Password is required!"
		}

		if len(errors) > 0 {
			return middleware.ValidationErrorResponse(c, errors)
		}

		c.Locals("validatedLogin", reqData)
		return c.Next()
	}
}
