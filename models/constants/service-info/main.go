package serviceInfo

import "fmt"

type ServiceInfo string

var (
	SERVICE_NAME        ServiceInfo = "MycoLab GenBank Search Service"
	SERVICE_WELCOME     ServiceInfo = "Welcome to the MycoLab GenBank sequence search API!"
	SERVICE_DESCRIPTION ServiceInfo = "BLASTs nucleotide sequences against NCBI and annotates the matches with GenBank metadata."
	SERVICE_CONTACT     ServiceInfo = "mailto:support@mycolab.org"

	SERVICE_ARTIFACT    ServiceInfo = "genbank"
	SERVICE_VERSION     ServiceInfo = "1.0.0"
	SERVICE_TYPE_NO_VER ServiceInfo = ServiceInfo(fmt.Sprintf("org.mycolab:%s", SERVICE_ARTIFACT))
	SERVICE_ID          ServiceInfo = SERVICE_TYPE_NO_VER
	SERVICE_TYPE        ServiceInfo = ServiceInfo(fmt.Sprintf("%s:%s", SERVICE_TYPE_NO_VER, SERVICE_VERSION))
)
