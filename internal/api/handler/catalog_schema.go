package handler

// errorResponse is the standard error envelope returned on all 4xx/5xx responses.
type errorResponse struct {
	Error string `json:"error"`
}

// messageResponse is the success envelope for catalog mutations.
type messageResponse struct {
	Message string `json:"message"`
}

// --- Request schemas ---
// Create schemas carry the primary key; update schemas take it from the URL
// and replace every non-key field. Numeric keys are positive integers, so
// min=1 covers both an absent field and an explicit zero.

type createAttributeRequest struct {
	AttributeID          int64  `json:"attribute_id"          validate:"min=1"`
	AttributeName        string `json:"attribute_name"        validate:"required"`
	AttributeDatatype    string `json:"attribute_datatype"    validate:"required"`
	AttributeDescription string `json:"attribute_description"`
	TypicalValues        string `json:"typical_values"`
	ValidationCriteria   string `json:"validation_criteria"`
}

type updateAttributeRequest struct {
	AttributeName        string `json:"attribute_name"     validate:"required"`
	AttributeDatatype    string `json:"attribute_datatype" validate:"required"`
	AttributeDescription string `json:"attribute_description"`
	TypicalValues        string `json:"typical_values"`
	ValidationCriteria   string `json:"validation_criteria"`
}

type createBusinessTermOwnerRequest struct {
	TermOwnerCode        string `json:"term_owner_code"        validate:"required"`
	TermOwnerDescription string `json:"term_owner_description" validate:"required"`
}

type updateBusinessTermOwnerRequest struct {
	TermOwnerDescription string `json:"term_owner_description" validate:"required"`
}

type createEntityRequest struct {
	EntityID          int64  `json:"entity_id"   validate:"min=1"`
	EntityName        string `json:"entity_name" validate:"required"`
	EntityDescription string `json:"entity_description"`
}

type updateEntityRequest struct {
	EntityName        string `json:"entity_name" validate:"required"`
	EntityDescription string `json:"entity_description"`
}

type createGlossaryTermRequest struct {
	BusinessTermShortName string `json:"business_term_short_name" validate:"required"`
	DateTermDefined       string `json:"date_term_defined"        validate:"required,datetime=2006-01-02"`
}

type updateGlossaryTermRequest struct {
	DateTermDefined string `json:"date_term_defined" validate:"required,datetime=2006-01-02"`
}

type createSourceSystemRequest struct {
	SrcSystemID   int64  `json:"src_system_id"   validate:"min=1"`
	SrcSystemName string `json:"src_system_name" validate:"required"`
}

type updateSourceSystemRequest struct {
	SrcSystemName string `json:"src_system_name" validate:"required"`
}
