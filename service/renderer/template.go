package renderer

const reportTemplate = `<html>
<head>
	<meta charset="UTF-8">
	<style>
		body { font-family: Arial, sans-serif; margin: 20px; }
		.header { background-color: #f8f9fa; padding: 20px; border-radius: 5px; }
		.cost-summary { background-color: #e3f2fd; padding: 15px; margin: 10px 0; border-radius: 5px; }
		.daily-breakdown { margin: 20px 0; }
		.day { margin: 15px 0; padding: 10px; border: 1px solid #ddd; border-radius: 5px; }
		.service-item { margin: 5px 0; padding: 5px; background-color: #f5f5f5; }
		.high-cost { color: #d32f2f; font-weight: bold; }
		.medium-cost { color: #f57c00; }
		.low-cost { color: #388e3c; }
		.recommendations { margin-top: 30px; padding: 15px; background-color: #f8f9fa; border-radius: 5px; }
	</style>
</head>
<body>
	<div class="header">
		<h1>AWS Cost Report</h1>
		<p>Cost summary generated on {{ .GeneratedAt }}</p>
		{{- if .AccountID }}
		<p>Account: {{ .AccountID }}</p>
		{{- end }}
		<p>Period: {{ .Start }} to {{ .LastDay }}</p>
	</div>

	<div class="cost-summary">
		<h2>Total Cost: {{ money .Report.Total }}</h2>
	</div>

	<div class="daily-breakdown">
		<h3>Daily Breakdown</h3>
	{{- range .Report.Days }}
		<div class="day">
			<h4>{{ fdate .Date }}</h4>
			<p><strong>Daily Total: {{ money .DailyTotal }}</strong></p>
			<h5>Services:</h5>
		{{- range .Services }}
			<div class="service-item">
				<span class="{{ severityClass .Amount }}">{{ .Label }}: {{ money .Amount }}</span>
			</div>
		{{- end }}
		</div>
	{{- end }}
	</div>

	<div class="recommendations">
		<h4>Cost Optimization Recommendations:</h4>
		<ul>
		{{- range .Recommendations }}
			<li>{{ . }}</li>
		{{- end }}
		</ul>
	</div>
</body>
</html>
`
