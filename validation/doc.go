// Package validation checks configuration structs before they are used.
//
// Struct tags are evaluated with go-playground/validator and field names are
// reported using their mapstructure keys, so a failure points at the same
// name a user wrote in the config file:
//
//	type Pipeline struct {
//	    Take int `mapstructure:"take" validate:"gte=0"`
//	}
//	err := validation.Validate(cfg)
//
// Rules that span several fields are collected with a Checker:
//
//	c := validation.New()
//	c.Check(cfg.To != nil || cfg.Count != nil, "range", "needs either to or count")
//	err := c.Err()
package validation
