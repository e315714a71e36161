package temporal

import (
	"github.com/radhian/credit-timeline/entity"
)

type liab struct {
	limit, balance interface{}
	late           map[string]interface{}
}

func report(bureau, date interface{}, scores []interface{}, liabilities []liab) map[string]interface{} {
	r := map[string]interface{}{
		"CREDIT_BUREAU":               bureau,
		"CreditReportFirstIssuedDate": date,
	}
	if scores != nil {
		list := make([]interface{}, 0, len(scores))
		for _, s := range scores {
			list = append(list, map[string]interface{}{
				"Value":                      s,
				"ModelNameType":              "FICORiskScoreClassic04",
				"CreditRepositorySourceType": bureau,
			})
		}
		r["CREDIT_SCORE"] = list
	}
	if liabilities != nil {
		list := make([]interface{}, 0, len(liabilities))
		for _, l := range liabilities {
			item := map[string]interface{}{
				"AccountType":       "Revolving",
				"CreditLimitAmount": l.limit,
				"CreditBalance":     l.balance,
			}
			if l.late != nil {
				item["LateCount"] = l.late
			}
			list = append(list, item)
		}
		r["CREDIT_LIABILITY"] = list
	}
	return r
}

func record(credit interface{}) entity.RawRecord {
	return entity.RawRecord{
		"Contact_ID":      "C-1001",
		"CREDIT_RESPONSE": credit,
	}
}

func sampleRecords() []entity.RawRecord {
	return []entity.RawRecord{
		record(report("Equifax", "2025-04-10", []interface{}{"600"}, []liab{{limit: "1000", balance: "500"}})),
		record(report("TransUnion", "2025-08-18", []interface{}{"620"}, []liab{{limit: "4000", balance: "1000"}})),
		record(report("Equifax", "2025-04-10", nil, []liab{{limit: "2000", balance: "1000", late: map[string]interface{}{"Days30": "1", "Days60": "None", "Days90": "None"}}})),
		record(report("TransUnion", "2025-04-10", []interface{}{"580"}, []liab{{limit: "4000", balance: "2000", late: map[string]interface{}{"Days30": "2", "Days60": "1", "Days90": "0"}}})),
		record(report("EXPERIAN", "2025-06-01", []interface{}{"None", "640"}, []liab{{limit: "None", balance: "200"}})),
		{"Contact_ID": "C-1001", "Note": "no credit report here"},
		record(report("None", "2025-06-01", []interface{}{"700"}, nil)),
		record(report("Equifax", "2025-08-18", []interface{}{610, 630}, []liab{{limit: 3000.0, balance: 600.0}})),
	}
}
