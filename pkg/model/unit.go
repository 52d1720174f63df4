package model

// SupportingInformation is the reserved document unit name for the
// shared annex. When present in a build it is compiled first and last,
// wrapping the other units so its second pass picks up forward
// cross-references.
const SupportingInformation = "supporting-information"
