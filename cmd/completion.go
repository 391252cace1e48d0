package cmd

import (
	"github.com/etnz/fbitda"
	"github.com/etnz/fbitda/docs"
	"github.com/posener/complete/v2"
	"github.com/posener/complete/v2/predict"
)

// Completion returns the shell completion of the fbitda command line.
//
// Install it with:
//
//	COMP_INSTALL=1 fbitda
func Completion() *complete.Command {
	roles := predict.Set{}
	for _, r := range fbitda.Roles() {
		roles = append(roles, r.String())
	}
	topics, _ := docs.GetAllTopics()
	onOff := predict.Set{"on", "off"}

	return &complete.Command{
		Flags: map[string]complete.Predictor{
			"store": predict.Files("*"),
			"raw":   predict.Nothing,
		},
		Sub: map[string]*complete.Command{
			"play": {Flags: map[string]complete.Predictor{
				"role": roles,
				"name": predict.Something,
			}},
			"login": {Flags: map[string]complete.Predictor{
				"role": roles,
				"name": predict.Something,
			}},
			"whoami": {Flags: map[string]complete.Predictor{
				"q": predict.Set{"$.user", "$.user.role", "$.valuation", "$.inputs", "$.reviews"},
			}},
			"guide": {Args: onOff},
			"value": {Flags: map[string]complete.Predictor{
				"ebitda":   predict.Something,
				"multiple": predict.Something,
				"factor":   predict.Set{"1", "2", "3", "4", "5"},
				"json":     predict.Nothing,
			}},
			"terms": {},
			"topic": {Args: predict.Set(append(topics, "*"))},
			"help":  {},
		},
	}
}
