package domain

// The five catalog resources. Each record's first field is its primary key;
// uniqueness is enforced by the backing store.

// Attribute describes a single customer-data attribute.
type Attribute struct {
	AttributeID          int64  `json:"attribute_id" bson:"attribute_id"`
	AttributeName        string `json:"attribute_name" bson:"attribute_name"`
	AttributeDatatype    string `json:"attribute_datatype" bson:"attribute_datatype"`
	AttributeDescription string `json:"attribute_description,omitempty" bson:"attribute_description,omitempty"`
	TypicalValues        string `json:"typical_values,omitempty" bson:"typical_values,omitempty"`
	ValidationCriteria   string `json:"validation_criteria,omitempty" bson:"validation_criteria,omitempty"`
}

// BusinessTermOwner identifies who owns a business term.
type BusinessTermOwner struct {
	TermOwnerCode        string `json:"term_owner_code" bson:"term_owner_code"`
	TermOwnerDescription string `json:"term_owner_description" bson:"term_owner_description"`
}

// Entity is a logical grouping of attributes (Customer, Order, ...).
type Entity struct {
	EntityID          int64  `json:"entity_id" bson:"entity_id"`
	EntityName        string `json:"entity_name" bson:"entity_name"`
	EntityDescription string `json:"entity_description,omitempty" bson:"entity_description,omitempty"`
}

// GlossaryTerm is a short business term with the date it was defined
// (YYYY-MM-DD).
type GlossaryTerm struct {
	BusinessTermShortName string `json:"business_term_short_name" bson:"business_term_short_name"`
	DateTermDefined       string `json:"date_term_defined" bson:"date_term_defined"`
}

// SourceSystem is an upstream system that feeds customer data.
type SourceSystem struct {
	SrcSystemID   int64  `json:"src_system_id" bson:"src_system_id"`
	SrcSystemName string `json:"src_system_name" bson:"src_system_name"`
}
