package garmin

import "strings"

// Sample:
//
// {
//     "dailySleepDTO": {
//         "sleepTimeSeconds": 27060,
//         "deepSleepSeconds": 5340,
//         "lightSleepSeconds": 16320,
//         "remSleepSeconds": 5400,
//         "sleepStartTimestampLocal": 1714512600000,
//         "sleepEndTimestampLocal": 1714540500000,
//         "sleepScores": {
//             "overall": {
//                 "value": 82,
//                 "qualifierKey": "GOOD"
//             }
//         }
//     }
// }
type sleepEnvelope struct {
	DailySleepDTO DailySleep `json:"dailySleepDTO"`
}

// DailySleep is one night's sleep summary. Every field is optional on the
// wire; absent fields stay at their zero value and the formatters render
// placeholders for them.
type DailySleep struct {
	SleepTimeSeconds         float64     `json:"sleepTimeSeconds"`
	DeepSleepSeconds         float64     `json:"deepSleepSeconds"`
	LightSleepSeconds        float64     `json:"lightSleepSeconds"`
	RemSleepSeconds          float64     `json:"remSleepSeconds"`
	SleepStartTimestampLocal int64       `json:"sleepStartTimestampLocal"`
	SleepEndTimestampLocal   int64       `json:"sleepEndTimestampLocal"`
	SleepScores              SleepScores `json:"sleepScores"`
}

type SleepScores struct {
	Overall SleepScore `json:"overall"`
}

type SleepScore struct {
	Value        *float64 `json:"value"`
	QualifierKey string   `json:"qualifierKey"`
}

// Sample:
//
// {
//     "ActivitiesForDay": {
//         "payload": [
//             {
//                 "activityType": {"typeKey": "running"},
//                 "activityName": "Morning Run",
//                 "distance": 5000.0,
//                 "duration": 1800.0,
//                 "startTimeGMT": "2024-05-01T07:15:30.0",
//                 "averageHR": 148.0,
//                 "calories": 402.0,
//                 "averageSpeed": 2.78
//             }
//         ]
//     }
// }
type activitiesEnvelope struct {
	ActivitiesForDay *activitiesForDay `json:"ActivitiesForDay"`
}

type activitiesForDay struct {
	Payload []Activity `json:"payload"`
}

// Activity is one recorded activity. Optional numeric fields are pointers
// so a missing value is distinguishable from zero.
type Activity struct {
	ActivityType ActivityType `json:"activityType"`
	ActivityName string       `json:"activityName"`
	Distance     float64      `json:"distance"`
	Duration     float64      `json:"duration"`
	StartTimeGMT string       `json:"startTimeGMT"`
	AverageHR    *float64     `json:"averageHR"`
	Calories     *float64     `json:"calories"`
	AverageSpeed float64      `json:"averageSpeed"`
	ActiveSets   *float64     `json:"activeSets"`
}

type ActivityType struct {
	TypeKey string `json:"typeKey"`
}

// Category returns the lower-cased activity type key, or "unknown" when the
// service did not classify the activity.
func (a Activity) Category() string {
	if a.ActivityType.TypeKey == "" {
		return "unknown"
	}
	return strings.ToLower(a.ActivityType.TypeKey)
}

// Name returns the display name, or a placeholder when unnamed.
func (a Activity) Name() string {
	if a.ActivityName == "" {
		return "Unnamed Activity"
	}
	return a.ActivityName
}
