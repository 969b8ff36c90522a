package i18n

// Message keys for the dashboard's user-facing strings.
const (
	MsgTitle              = "title"
	MsgTagline            = "tagline"
	MsgSelectDistrict     = "select_district"
	MsgSelectPrompt       = "select_prompt"
	MsgState              = "state"
	MsgDistrict           = "district"
	MsgDetect             = "detect"
	MsgDetecting          = "detecting"
	MsgDetectPermission   = "detect_permission"
	MsgViewDashboard      = "view_dashboard"
	MsgLoading            = "loading"
	MsgLastUpdated        = "last_updated"
	MsgDataSource         = "data_source"
	MsgThisMonth          = "this_month"
	MsgWorkdaysCreated    = "workdays_created"
	MsgHouseholds         = "households_benefited"
	MsgPendingPayments    = "pending_payments"
	MsgWorkdays           = "workdays"
	MsgHouseholdsShort    = "households"
	MsgTrendTitle         = "trend_title"
	MsgCompare            = "compare"
	MsgComparison         = "comparison"
	MsgDistrictCompare    = "district_comparison"
	MsgYourDistrict       = "your_district"
	MsgStateAverage       = "state_average"
	MsgVsStateAverage     = "vs_state_average"
	MsgStateAverageInline = "state_average_inline"
	MsgPerforming         = "performing"
	MsgDistrictIs         = "district_is"
	MsgAbove              = "above"
	MsgBelow              = "below"
	MsgStatusGood         = "status_good"
	MsgStatusAverage      = "status_average"
	MsgStatusPoor         = "status_poor"
	MsgClose              = "close"
	MsgFeedback           = "feedback"
	MsgSendFeedback       = "send_feedback"
	MsgMonth              = "month"
	MsgValue              = "value"
	MsgMetric             = "metric"
	MsgStatus             = "status"
	MsgTrend              = "trend"
)

var messages = map[string]Text{
	MsgTitle:              {"Our Voice, Our Rights", "हमारी आवाज़, हमारे अधिकार"},
	MsgTagline:            {"Understand how your district is performing under MGNREGA", "मनरेगा के तहत आपका जिला कैसा प्रदर्शन कर रहा है, यह समझें"},
	MsgSelectDistrict:     {"Select Your District", "अपना जिला चुनें"},
	MsgSelectPrompt:       {"Choose your state and district to view performance data", "प्रदर्शन डेटा देखने के लिए अपना राज्य और जिला चुनें"},
	MsgState:              {"State", "राज्य"},
	MsgDistrict:           {"District", "जिला"},
	MsgDetect:             {"Detect My District", "मेरे जिले का पता लगाएं"},
	MsgDetecting:          {"Detecting location...", "स्थान का पता लगा रहा है..."},
	MsgDetectPermission:   {"This feature requires location permission", "इस सुविधा के लिए स्थान अनुमति की आवश्यकता है"},
	MsgViewDashboard:      {"View Dashboard", "डैशबोर्ड देखें"},
	MsgLoading:            {"Loading...", "लोड हो रहा है..."},
	MsgLastUpdated:        {"Last updated on", "अंतिम अपडेट"},
	MsgDataSource:         {"Data Source: data.gov.in (MGNREGA Open API)", "डेटा स्रोत: data.gov.in (मनरेगा ओपन API)"},
	MsgThisMonth:          {"This month", "इस महीने"},
	MsgWorkdaysCreated:    {"Workdays Created", "बनाए गए कार्यदिवस"},
	MsgHouseholds:         {"Households Benefited", "लाभान्वित परिवार"},
	MsgPendingPayments:    {"Pending Payments", "लंबित भुगतान"},
	MsgWorkdays:           {"Workdays", "कार्यदिवस"},
	MsgHouseholdsShort:    {"Households", "परिवार"},
	MsgTrendTitle:         {"12-Month Performance Trend", "12 महीने का प्रदर्शन रुझान"},
	MsgCompare:            {"Compare", "तुलना करें"},
	MsgComparison:         {"Comparison", "तुलना"},
	MsgDistrictCompare:    {"District Comparison", "जिला तुलना"},
	MsgYourDistrict:       {"Your District", "आपका जिला"},
	MsgStateAverage:       {"State Average", "राज्य औसत"},
	MsgVsStateAverage:     {"vs State Average", "बनाम राज्य औसत"},
	MsgStateAverageInline: {"state average", "राज्य औसत"},
	MsgPerforming:         {"Your district is performing", "आपका जिला प्रदर्शन कर रहा है"},
	MsgDistrictIs:         {"Your district is", "आपका जिला है"},
	MsgAbove:              {"above", "ऊपर"},
	MsgBelow:              {"below", "नीचे"},
	MsgStatusGood:         {"Good", "अच्छा"},
	MsgStatusAverage:      {"Average", "औसत"},
	MsgStatusPoor:         {"Poor", "खराब"},
	MsgClose:              {"Close", "बंद करें"},
	MsgFeedback:           {"Have feedback or issues to report?", "प्रतिक्रिया या समस्या रिपोर्ट करनी है?"},
	MsgSendFeedback:       {"Send Feedback", "प्रतिक्रिया भेजें"},
	MsgMonth:              {"Month", "महीना"},
	MsgValue:              {"Value", "मान"},
	MsgMetric:             {"Metric", "मापदंड"},
	MsgStatus:             {"Status", "स्थिति"},
	MsgTrend:              {"Trend", "रुझान"},
}

// T returns the message for key in lang. Unknown keys come back as the key
// itself so a missing entry shows up on screen instead of as a blank.
func T(lang Language, key string) string {
	m, ok := messages[key]
	if !ok {
		return key
	}
	return m.In(lang)
}

// Lookup returns both language variants of a message.
func Lookup(key string) (Text, bool) {
	m, ok := messages[key]
	return m, ok
}

// Bundle returns every message resolved to lang, keyed by message key.
func Bundle(lang Language) map[string]string {
	out := make(map[string]string, len(messages))
	for k, m := range messages {
		out[k] = m.In(lang)
	}
	return out
}
