package consts

const (
	// CRM payload keys
	FieldCreditResponse = "CREDIT_RESPONSE"
	FieldCreditBureau   = "CREDIT_BUREAU"
	FieldReportDate     = "CreditReportFirstIssuedDate"
	FieldReportID       = "Report_ID"
	FieldCreditScore    = "CREDIT_SCORE"
	FieldCreditLiab     = "CREDIT_LIABILITY"
	FieldCreditInquiry  = "CREDIT_INQUIRY"

	// CREDIT_SCORE keys
	FieldScoreValue  = "Value"
	FieldScoreModel  = "ModelNameType"
	FieldScoreSource = "CreditRepositorySourceType"

	// CREDIT_LIABILITY keys
	FieldAccountType   = "AccountType"
	FieldCreditLimit   = "CreditLimitAmount"
	FieldCreditBalance = "CreditBalance"
	FieldLateCount     = "LateCount"
	FieldDays30        = "Days30"
	FieldDays60        = "Days60"
	FieldDays90        = "Days90"

	// CREDIT_INQUIRY keys
	FieldInquiryDate   = "Date"
	FieldInquiryName   = "Name"
	FieldInquirySource = "CreditRepositorySourceType"

	// NullLiteral is how the CRM serializes null values.
	NullLiteral = "None"

	// Default config
	DefaultShardSize = 500
	DefaultPort      = "8080"
	DefaultDBDriver  = "postgres"
	DefaultLogLevel  = "info"
	DefaultOperator  = "system"
)
