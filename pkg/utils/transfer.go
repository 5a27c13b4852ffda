package utils

import (
	"strconv"
	"time"

	"Nestling.com/pkg/constants"
)

// Transfer JWT载荷中的user_id可能是int64/float64/string，统一转成int64
func Transfer(value interface{}) int64 {
	switch v := value.(type) {
	case int64:
		return v
	case float64:
		return int64(v)
	case string:
		if intValue, err := strconv.ParseInt(v, 10, 64); err == nil {
			return intValue
		}
	}
	return -1
}

func ConvertStringToInt64(v string) (int64, error) {
	if res, err := strconv.ParseInt(v, 10, 64); err != nil {
		return -1, err
	} else {
		return res, nil
	}
}

func ConvertInt64ToString(v int64) string {
	return strconv.FormatInt(v, 10)
}

func ConvertTimestampToString(timestamp int64) string {
	return time.Unix(timestamp, 0).Format(constants.DataFormate)
}

func ConvertStringToTimestamp(date string) int64 {
	t, _ := time.ParseInLocation(constants.DataFormate, date, time.Local)
	return t.Unix()
}
