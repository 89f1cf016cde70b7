package report

import (
	_ "embed"
	"fmt"
	"sort"

	"github.com/hashicorp/go-multierror"
	"gopkg.in/yaml.v3"
)

var (
	ReportNames []string
	Reports     map[string]Report
)

//go:embed report_defaults.yaml
var defaultReportYaml string

func LoadDefaultReports() error {
	return ParseReports(defaultReportYaml)
}

// Get the named Report, or return an error
func GetReport(name string) (Report, error) {
	report, ok := Reports[name]
	if !ok {
		return Report{}, fmt.Errorf("report %s not found", name)
	}
	return report, nil
}

// All registered report names, sorted
func ListReports() []string {
	return ReportNames
}

func ParseReports(yamlStr string) error {
	var reports []Report
	err := yaml.Unmarshal([]byte(yamlStr), &reports)
	if err != nil {
		return err
	}

	var errs *multierror.Error
	Reports = make(map[string]Report)
	ReportNames = nil

	// construct the Reports map
	for _, report := range reports {
		if err := report.Validate(); err != nil {
			errs = multierror.Append(errs, err)
			continue
		}
		report.applyDefaults()
		ReportNames = append(ReportNames, report.Name)
		Reports[report.Name] = report
	}
	sort.Strings(ReportNames)

	return errs.ErrorOrNil()
}
