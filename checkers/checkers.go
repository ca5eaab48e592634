package checkers

import (
	"strings"
	"time"

	. "gopkg.in/check.v1"
)

type isTrueChecker struct {
	*CheckerInfo
}

var IsTrue Checker = &isTrueChecker{
	&CheckerInfo{Name: "IsTrue", Params: []string{"value"}},
}

func (checker *isTrueChecker) Check(params []interface{}, names []string) (bool, string) {
	if param, ok := params[0].(bool); ok {
		return param, ""
	}
	return false, "Param passed not a boolean"
}

type containsChecker struct {
	*CheckerInfo
}

var Contains = &containsChecker{
	&CheckerInfo{Name: "Contains", Params: []string{"obtained", "substring"}},
}

func (checker *containsChecker) Check(params []interface{}, names []string) (bool, string) {
	if len(params) < 2 {
		return false, "Must pass two arguments to Contains Checker"
	}

	wanted, okw := params[1].(string)
	if !okw {
		return false, "Second parameter must be a string"
	}

	switch obtained := params[0].(type) {
	case string:
		return strings.Contains(obtained, wanted), ""
	case []string:
		for _, element := range obtained {
			if element == wanted {
				return true, ""
			}
		}
		return false, ""
	default:
		return false, "First parameter must be a string or a string slice"
	}
}

type ascendingChecker struct {
	*CheckerInfo
}

// Ascending passes when a []time.Time never decreases.
var Ascending = &ascendingChecker{
	&CheckerInfo{Name: "Ascending", Params: []string{"times"}},
}

func (checker *ascendingChecker) Check(params []interface{}, names []string) (bool, string) {
	times, ok := params[0].([]time.Time)
	if !ok {
		return false, "Param passed not a []time.Time"
	}

	for i := 1; i < len(times); i++ {
		if times[i].Before(times[i-1]) {
			return false, ""
		}
	}

	return true, ""
}

type equalTimeChecker struct {
	*CheckerInfo
}

var EqualTime = &equalTimeChecker{
	&CheckerInfo{Name: "EqualTime", Params: []string{"time 1", "time 2", "tolerance(opt)"}},
}

func (checker *equalTimeChecker) Check(params []interface{}, names []string) (bool, string) {
	if len(params) < 2 {
		return false, "Must pass two arguments to Equal Time Checker"
	}

	time1, ok1 := params[0].(time.Time)
	time2, ok2 := params[1].(time.Time)
	if !ok1 || !ok2 {
		return false, "Both parameters must be time.Time instances"
	}

	d := time.Duration(0)
	if len(params) == 3 {
		d = params[2].(time.Duration)
	}

	return time1.Sub(time2) <= d, ""
}
