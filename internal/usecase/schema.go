package usecase

import (
	"bytes"
	"encoding/json"
	"errors"
	"fmt"
	"math"
	"strconv"
	"strings"

	"github.com/xeipuuv/gojsonschema"

	"github.com/xavierca1/lead-mailer/internal/entity"
)

type ValidationError struct {
	Field   string `json:"field"`
	Message string `json:"message"`
	Type    string `json:"type"`
}

func (e ValidationError) Error() string {
	return fmt.Sprintf("%s: %s", e.Field, e.Message)
}

const emailRequestSchema = `{
  "$schema": "http://json-schema.org/draft-07/schema#",
  "type": "object",
  "required": ["lead", "persona", "probability"],
  "properties": {
    "probability": {"type": "string"},
    "persona": {
      "type": "object",
      "required": ["name", "icpQuestions"],
      "properties": {
        "name": {"type": "string"},
        "icpQuestions": {
          "type": "object",
          "properties": {
            "usp": {"type": ["string", "null"]},
            "industry": {"type": ["string", "null"]},
            "customerSupport": {"type": ["string", "null"]}
          }
        }
      }
    },
    "lead": {
      "type": "object",
      "required": [
        "uniqueIdentifier", "firstName", "lastName", "fullName",
        "linkedinUrl", "linkedinUsername", "linkedinId",
        "twitterUrl", "twitterUsername", "workEmail", "industry",
        "jobTitle", "jobCompanyName", "jobCompanyWebsite", "jobCompanyIndustry",
        "jobCompany12moEmployeeGrowthRate", "jobCompanyTotalFundingRaised",
        "jobCompanyEmployeeCount", "jobLastChanged", "jobLastVerified",
        "jobStartDate", "jobCompanyFounded", "jobCompanyLocationRegion",
        "locationName", "locationCountry", "skills", "education",
        "gender", "companyEmployees", "dataProvider"
      ],
      "properties": {
        "_id": {"type": "string"},
        "__v": {"type": "integer"},
        "uniqueIdentifier": {"type": "string"},
        "firstName": {"type": "string"},
        "lastName": {"type": "string"},
        "fullName": {"type": "string"},
        "linkedinUrl": {"type": "string"},
        "linkedinUsername": {"type": "string"},
        "linkedinId": {"type": "string"},
        "twitterUrl": {"type": "string"},
        "twitterUsername": {"type": "string"},
        "workEmail": {"type": "string"},
        "industry": {"type": "string"},
        "jobTitle": {"type": "string"},
        "jobCompanyName": {"type": "string"},
        "jobCompanyWebsite": {"type": "string"},
        "jobCompanyIndustry": {"type": "string"},
        "jobCompany12moEmployeeGrowthRate": {"type": "number"},
        "jobCompanyTotalFundingRaised": {"type": "number"},
        "jobCompanyInferredRevenue": {"type": ["string", "null"]},
        "jobCompanyEmployeeCount": {"type": "integer"},
        "jobLastChanged": {"type": "string"},
        "jobLastVerified": {"type": "string"},
        "jobStartDate": {"type": "string"},
        "jobCompanySize": {"type": ["string", "null"]},
        "jobCompanyFounded": {"type": "integer"},
        "jobCompanyLocationRegion": {"type": "string"},
        "locationName": {"type": "string"},
        "locationCountry": {"type": "string"},
        "skills": {"type": "array", "items": {"type": "string"}},
        "gender": {"type": "string"},
        "companyEmployees": {"type": "string"},
        "dataProvider": {"type": "string"},
        "education": {
          "type": "object",
          "required": ["school", "linkedinUrl", "summary"],
          "properties": {
            "school": {"type": "string"},
            "linkedinUrl": {"type": "string"},
            "startDate": {"type": ["string", "null"]},
            "endDate": {"type": ["string", "null"]},
            "degreeName": {"type": ["string", "null"]},
            "raw": {"type": "array", "items": {"type": "string"}},
            "summary": {"type": "string"}
          }
        }
      }
    }
  }
}`

const rootContext = "(root)"

var requestSchema = mustCompileSchema(emailRequestSchema)

func mustCompileSchema(src string) *gojsonschema.Schema {
	schema, err := gojsonschema.NewSchema(gojsonschema.NewStringLoader(src))
	if err != nil {
		panic(fmt.Sprintf("invalid email request schema: %v", err))
	}
	return schema
}

// ParseEmailRequest validates body against the request schema and decodes
// it. Every offending field is reported, not just the first.
func ParseEmailRequest(body []byte) (*entity.EmailRequest, error) {
	if !json.Valid(body) {
		return nil, &DomainError{Code: CodeInvalidJSON, Message: "invalid JSON"}
	}

	result, err := requestSchema.Validate(gojsonschema.NewBytesLoader(body))
	if err != nil {
		return nil, &DomainError{Code: CodeInvalidJSON, Message: "invalid JSON: " + err.Error()}
	}

	if !result.Valid() {
		fields := make([]ValidationError, 0, len(result.Errors()))
		for _, re := range result.Errors() {
			fields = append(fields, ValidationError{
				Field:   fieldPath(re),
				Message: re.Description(),
				Type:    re.Type(),
			})
		}
		return nil, &DomainError{
			Code:    CodeValidation,
			Message: validationMessage(fields),
			Fields:  fields,
		}
	}

	req, err := decodeEmailRequest(body)
	if err != nil {
		return nil, err
	}
	if req.Lead.Education.Raw == nil {
		req.Lead.Education.Raw = []string{}
	}
	return req, nil
}

// decodeEmailRequest decodes a body that already passed the schema. JSON
// Schema treats 2015.0 as an integer, so whole-number floats are rewritten
// before the values land in int fields.
func decodeEmailRequest(body []byte) (*entity.EmailRequest, error) {
	dec := json.NewDecoder(bytes.NewReader(body))
	dec.UseNumber()

	var raw any
	if err := dec.Decode(&raw); err != nil {
		return nil, &DomainError{Code: CodeInvalidJSON, Message: "invalid JSON"}
	}

	normalized, err := json.Marshal(normalizeNumbers(raw))
	if err != nil {
		return nil, &DomainError{Code: CodeInvalidJSON, Message: "invalid JSON"}
	}

	var req entity.EmailRequest
	if err := json.Unmarshal(normalized, &req); err != nil {
		fields := []ValidationError{decodeFieldError(err)}
		return nil, &DomainError{
			Code:    CodeValidation,
			Message: validationMessage(fields),
			Fields:  fields,
		}
	}
	return &req, nil
}

func normalizeNumbers(v any) any {
	switch t := v.(type) {
	case map[string]any:
		for k, child := range t {
			t[k] = normalizeNumbers(child)
		}
		return t
	case []any:
		for i, child := range t {
			t[i] = normalizeNumbers(child)
		}
		return t
	case json.Number:
		if _, err := t.Int64(); err == nil {
			return t
		}
		f, err := t.Float64()
		if err != nil || f != math.Trunc(f) || math.Abs(f) > maxExactInt {
			return t
		}
		return json.Number(strconv.FormatInt(int64(f), 10))
	default:
		return v
	}
}

// 2^53, the largest range where float64 holds every integer.
const maxExactInt = 1 << 53

// decodeFieldError reports a decode failure by JSON path only.
func decodeFieldError(err error) ValidationError {
	var typeErr *json.UnmarshalTypeError
	if errors.As(err, &typeErr) && typeErr.Field != "" {
		return ValidationError{
			Field:   typeErr.Field,
			Message: "Invalid value: " + typeErr.Value,
			Type:    "invalid_type",
		}
	}
	return ValidationError{
		Field:   rootContext,
		Message: "Invalid value",
		Type:    "invalid_type",
	}
}

// fieldPath turns a schema error into a dotted path such as lead.firstName.
// Required errors are raised on the parent object, so the missing property
// is appended.
func fieldPath(re gojsonschema.ResultError) string {
	path := ""
	if re.Context() != nil {
		path = strings.TrimPrefix(re.Context().String(), rootContext)
		path = strings.TrimPrefix(path, ".")
	}
	if re.Type() == "required" {
		if prop, ok := re.Details()["property"].(string); ok {
			if path == "" || path == prop {
				return prop
			}
			if strings.HasSuffix(path, "."+prop) {
				return path
			}
			return path + "." + prop
		}
	}
	return path
}

func validationMessage(fields []ValidationError) string {
	parts := make([]string, len(fields))
	for i, f := range fields {
		parts[i] = f.Field + " (" + f.Message + ")"
	}
	return "validation failed: " + strings.Join(parts, ", ")
}
