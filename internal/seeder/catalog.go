package seeder

// Definition pairs a short code with its description.
type Definition struct {
	Code string
	Text string
}

// JobTitle lists the manager positions an employee with Title can report to.
type JobTitle struct {
	Title    string
	Managers []string
}

// FinanceCategory lists the transaction descriptions allowed for a category.
type FinanceCategory struct {
	Name         string
	Descriptions []string
}

const (
	StatusActive  = "ACTIVE"
	StatusClosed  = "CLOSED"
	StatusHistory = "HISTORY"

	EmployeeEmployed   = "EMPLOYEED"
	EmployeeTerminated = "TERMINATED"

	severityNormal = "NORMAL"
	severityInfo   = "INFO"
)

var (
	companyAdjectives = []string{
		"Acme", "Apex", "Global", "Infinite", "Dynamic", "Epic", "Swift", "Mega",
		"Prime", "Tech", "Fusion", "Alpha", "Omega", "Brilliant", "Vibrant",
		"Ultimate", "Superior", "Elite", "Innovative", "Creative", "Excellent",
		"Proactive", "Strategic", "Diverse", "Flexible", "Pioneer", "Visionary",
	}
	companyNouns = []string{
		"Solutions", "Systems", "Enterprises", "Innovations", "Industries",
		"Services", "Technologies", "Ventures", "Group", "Labs", "Corp", "Co",
		"Networks", "Enterprises", "Enterprises", "Consulting", "Solutions",
		"Dynamics", "Solutions", "Solutions", "Technologies", "Group", "Innovations",
		"Enterprises", "Enterprises", "Enterprises", "Consulting",
	}
	companyKeywords = []string{
		"Advanced", "Digital", "Tech", "Innovative", "Global", "Sustainable",
		"Creative", "Power", "Future", "Precision", "First", "Smart", "Synergy",
		"Synergistic", "Strategic", "Revolutionary", "Cutting-Edge", "Dynamic",
		"Dynamic", "Ingenious", "Transformative", "Inspire", "Inspiration", "Progressive",
		"Evolve", "Evolution", "Impactful", "Forward", "Strive", "Strive", "Vision", "Visionary",
	}

	legalSurnames = []string{
		"Anderson", "Baker", "Carter", "Davis", "Evans", "Fisher", "Garcia",
		"Harris", "Jackson", "King", "Lewis", "Martin", "Nelson", "Owens",
		"Parker", "Quinn", "Roberts", "Smith", "Taylor", "Underwood", "Vasquez",
		"Williams", "Young", "Zimmerman",
	}
	legalTerms = []string{
		"Legal", "Law", "Justice", "Advocates", "Solicitors", "Counsel",
		"Barristers", "Attorneys", "Partners", "Associates", "Consultants",
		"Advisors", "Counselors", "Litigators", "Defenders", "Prosecutors",
	}
	legalTaxCategories = []string{"G", "M", "N", "I", "D", "Ba", "Bt"}

	streetNames = []string{
		"Maple", "Oak", "Pine", "Cedar", "Elm", "Willow", "Peach", "Cherry",
		"Magnolia", "Walnut", "Poplar", "Aspen", "Birch", "Spruce", "Hickory",
		"Sycamore", "Chestnut", "Laurel", "Redwood", "Sequoia", "Cypress",
	}
	streetTypes = []string{
		"Road", "Street", "Avenue", "Boulevard", "Drive", "Court", "Lane", "Terrace",
		"Place", "Circle", "Highway", "Square", "Trail", "Parkway", "Alley", "Center",
		"Mill", "Gardens", "Crescent", "Crossing", "Loop",
	}
	cityNames = []string{
		"Springfield", "Rivertown", "Meadowville", "Eaglewood", "Sunnyvale",
		"Greenfield", "Kingsport", "Fairview", "Lakeview", "Ridgecrest", "Westbrook",
		"Easton", "Harborview", "Brookfield", "Cliffside", "Rockville", "Mapleton",
		"Hilltop", "Lakeside", "Rainbow City", "Sunset Hills",
	}
	stateNames = []string{
		"Alabama", "Alaska", "Arizona", "Arkansas", "California", "Colorado",
		"Connecticut", "Delaware", "Florida", "Georgia", "Hawaii", "Idaho", "Illinois",
		"Indiana", "Iowa", "Kansas", "Kentucky", "Louisiana", "Maine", "Maryland",
		"Massachusetts", "Michigan", "Minnesota", "Mississippi", "Missouri", "Montana",
		"Nebraska", "Nevada", "New Hampshire", "New Jersey", "New Mexico", "New York",
		"North Carolina", "North Dakota", "Ohio", "Oklahoma", "Oregon", "Pennsylvania",
		"Rhode Island", "South Carolina", "South Dakota", "Tennessee", "Texas", "Utah",
		"Vermont", "Virginia", "Washington", "West Virginia", "Wisconsin", "Wyoming",
	}
	countryCodes = []string{"US", "UK", "CAN", "AUS", "GER", "FRA", "JPN", "CHN", "RUS", "BRA", "IND"}

	currencies     = []string{"USD", "EUR", "JPY", "GBP", "AUD", "CAD", "CHF", "CNY", "SEK", "NZD"}
	entryCodes     = []string{"DIV", "INT"}
	debitAndCredit = []string{"Debit", "Credit"}

	financeCategories = []FinanceCategory{
		{"Rent", []string{"Rent payment"}},
		{"Office", []string{"Office supplies", "Office furniture", "Office Repair"}},
		{"Utilities", []string{"Electricity bill", "Internet bill", "Water Bill"}},
		{"Software", []string{"Coding Software", "Document Software", "Data Software", "Media Software"}},
		{"Travel", []string{"Travel reimbursement"}},
		{"Marketing", []string{"Advertising campaign", "Annual advertising"}},
		{"Employee", []string{"Employee salaries", "Contract Payment", "Bonus"}},
		{"Other Expenses", []string{"Shipping", "Repairs"}},
	}
	financeAccountTypes   = []string{"Savings", "Checking"}
	financePaymentMethods = []string{
		"Bank transfer", "Credit card", "Bank transfer", "Credit card",
		"PayPal", "Cash", "Bank transfer", "Credit card", "Bank transfer",
		"Bank transfer",
	}
	financeApprovalStatuses = []string{"Approved", "Rejected", "Pending"}
	financeComments         = []string{
		"Monthly rent, For office stationery", "Monthly bill, Business dinner",
		"Annual subscription", "Team travel expense", "Online ads, New chairs & desks",
		"Monthly internet", "Monthly payroll processing", "Quarterly tax payments",
		"Annual software licensing fees", "Office renovation costs",
		"Client entertainment expenses", "Employee training and development",
		"Insurance premiums, Monthly cleaning services", "Marketing campaign expenses",
		"Technology upgrades, Hardware purchases", "Legal consultation fees",
		"Utilities and maintenance", "Conference and event sponsorships",
		"Employee health and wellness programs", "Transportation and logistics costs",
		"Research and development investments", "Charitable donations and sponsorships",
		"Security services, Emergency funds allocation",
	}

	firstNames = []string{
		"John", "Jane", "Alex", "Emily", "David", "Sarah", "Michael", "Olivia",
		"Daniel", "Emma", "Chris", "Anna", "James", "Sophia", "Robert", "Isabella",
		"William", "Mia", "Joseph", "Amelia", "Richard", "Evelyn", "Charles",
		"Abigail", "Thomas", "Harper", "Mary", "Ethan", "Jessica", "Benjamin",
	}
	lastNames = []string{
		"Smith", "Johnson", "Williams", "Brown", "Jones", "Miller", "Davis",
		"Garcia", "Rodriguez", "Wilson", "Martinez", "Anderson", "Taylor",
		"Thomas", "Hernandez", "Moore", "Martin", "Jackson", "Thompson", "White",
		"Lopez", "Lee", "Gonzalez", "Harris", "Clark", "Lewis", "Robinson",
		"Walker", "Perez", "Hall",
	}
	jobTitles = []JobTitle{
		{"Business Analyst", []string{"Operations Manager", "Project Manager"}},
		{"Data Engineer", []string{"Operations Manager", "Project Manager", "Engineer Manager"}},
		{"Data Analyst", []string{"Operations Manager", "Project Manager"}},
		{"Dev Ops Engineer", []string{"Operations Manager", "Project Manager"}},
		{"Financial Analyst", []string{"Operations Manager", "Project Manager", "Product Manager", "Finance manager"}},
		{"IT Specialist", []string{"IT Manager"}},
		{"Engineer Specialist", []string{"Engineer Manager"}},
		{"Sales and Stragety", []string{"Sales Manager"}},
		{"Supply Chain Coordinator", []string{"Project Manager", "Product Manager"}},
		{"Quality Assurance Tester", []string{"Project Manager", "Product Manager"}},
		{"Web Developer", []string{"Operations Manager", "Project Manager", "Product Manager", "Marketing Manager"}},
		{"Social Media Specialist", []string{"Marketing Manager"}},
		{"Customer Service Representative", []string{"Customer Success Manager"}},
		{"Human Resources", []string{"Human Resources Manager"}},
		{"Administrative Assistant", []string{"IT Manager"}},
		{"Legal Assistant", []string{"Legal Manager"}},
		{"Software Engineer", []string{"Operations Manager", "Project Manager", "Product Manager", "Engineer Manager"}},
		{"Graphic Designer", []string{"Operations Manager", "Project Manager", "Product Manager", "Engineer Manager"}},
		{"Sales Representative", []string{"Sales Manager"}},
		{"Research Scientist", []string{"Operations Manager", "Project Manager", "Product Manager", "Marketing Manager", "Engineer Manager"}},
		{"Accountant", []string{"Finance manager"}},
	}
)

var (
	legalTypes = []Definition{
		{"BANK", "Bank Division"},
		{"CREDIT", "Credit Account"},
		{"TRADR", "Trader credential account"},
		{"AFFRS", "Affairs"},
		{"AFF", "Available Funds File"},
		{"CORP", "Corporation Division"},
		{"AG", "Agriculture"},
		{"ADVIS", "Legal Advisor"},
		{"BENE", "Beneficiary credentail for investment"},
		{"AGENT", "An agent bank acts as a bank performing some specific duties on behalf of another party"},
		{"GUNTE", "The bank guarantee means that the lender will ensure that the liabilities of a debtor will be met. In other words, if the debtor fails to settle a debt, the bank will cover it"},
		{"TTEE", "In the case of the certificate of deposit, the trustee is most likely someone charged with taking care of the money until the person it is intended for comes of an age to receive it"},
		{"AFD", "Allowance For Depreciation"},
	}
	taxTypes = []Definition{
		{"ADJ", "Adjustment"},
		{"BEN/BENF", "Benefit(s)"},
		{"LTI", "Loan to Income"},
		{"IHT", "Inheritance Tax"},
		{"CAR", "Centralized Accounts Receivable"},
		{"FoF", "Fund of Funds"},
		{"CWP", "Conventional With Profits"},
		{"ADMIS", "Admission"},
		{"C+MV", "Cost Plus Market Value"},
		{"Q1", "First quarter of the year"},
		{"A/R", "Accounts Receivable"},
		{"WPA", "With Profits Actuary / With Profits Annuity"},
		{"NBV", "Net Book Value"},
		{"APC/APD", "Amended Payroll Certification/Distribution"},
		{"B & C", "Bonds And Coupons"},
		{"WPICC", "With Profits Insurance Capital Component"},
		{"VaR", "Value at Risk"},
		{"EC", "European Commission"},
		{"TV", "Transfer Value"},
		{"Q4", "Fourth quarter of the year"},
		{"ADDL", "Additional"},
		{"CTF", "Child Trust Fund"},
		{"CESR", "Committee of European Securities Regulators"},
		{"CIMPS", "Contracted-in Money Purchase Scheme"},
		{"CDS", "Credit Default Swap"},
		{"C/S", "Cost Sharing"},
		{"AFFRS", "Affairs"},
		{"AFD", "Allowance For Depreciation"},
		{"DGI", "Domestically Generated Inflation"},
		{"ABS", "Absences - As In Compensated Absences"},
		{"OMO", "Open Market Option"},
		{"PBT", "Profit before Taxes"},
		{"MBO", "Management Buy Out"},
		{"RCM", "Risk Capital Margin"},
		{"CAP.", "Capital"},
		{"ETF", "Exchange Traded Funds"},
		{"MBI", "Management Buy In"},
		{"BA", "Bank Adjustments"},
		{"ADT", "Auditing"},
		{"EBT", "Earnings Before Taxes"},
		{"PV", "Present Value"},
		{"RoC", "Return on Capital"},
		{"Q3", "Third quarter of the year"},
		{"PAT", "Profit after Taxes"},
		{"APPROP", "Appropriations"},
		{"COMPS", "Contracted-out Money Purchase Scheme"},
		{"ABACCR", "Absences Accrual - (As In Compensated Absences Accrual)"},
		{"CT", "Corporation Tax"},
		{"FoHF", "Fund of Hedge Funds"},
		{"UHNW", "Ultra High Net Worth"},
		{"FTT", "Financial Transaction Tax"},
		{"WoM", "Whole of Market"},
		{"NAV", "Net Asset Value"},
		{"Q2", "Second quarter of the year"},
		{"AID", "Agency For International Development"},
		{"ADMIN", "Administrative"},
	}
	logEvents = []Definition{
		{"User Activity", "Logged the user activity"},
		{"Server Event", "Logged the server activity"},
		{"Data Change", "Logged a change in data"},
		{"File Change", "Logged a change in a file"},
		{"System Error", "Logged a system error"},
		{"Security Alert", "Logged a potential security breach"},
	}
	logDataChanges = []Definition{
		{"Create", "Adding new data or records to the system. This could involve creating a new user account, adding a new product to a catalog, or entering new transaction details."},
		{"Update", "Modifying existing data or records. This includes changes like updating user information, altering product prices, or revising transaction amounts."},
		{"Delete", "Removing data or records from the system. This might involve deleting a user account, removing a product from the catalog, or voiding a transaction."},
		{"Archive", "Moving data to an archival state rather than deleting it. This allows for the preservation of data for historical or compliance purposes while reducing its active footprint in the system."},
		{"Merge", "Combining multiple data records into a single record. This is often used in scenarios like deduplicating customer records or consolidating transaction details."},
		{"Split", "Separating a single data record into multiple records. This might be used in cases where a single transaction needs to be divided into multiple parts for accounting purposes."},
		{"Rollback", "Reverting data to a previous state or version. This is used in scenarios where recent changes need to be undone."},
		{"Import", "Bringing in data from external sources. This could involve bulk uploading of data, such as importing a list of contacts or product details."},
		{"Export", "Sending data out to external systems or files. This typically involves generating reports or datasets for analysis or sharing with external parties."},
		{"Data Cleansing", "Correcting or removing inaccurate records from a dataset. This ensures the quality and reliability of the data in the system."},
	}
	logFileChanges = []Definition{
		{"File Upload", "Notes when a user uploads a file, including details like file type and size."},
		{"File Deletion", "Logs the removal of a file from the system, detailing the file name and deletion time."},
		{"File Rename", "Records the action of changing a file's name, noting the original and new names of the file."},
		{"Form Submission", "Logs when a user submits a form, such as a contact form, registration form, or a settings change form."},
		{"File Modification", "Tracks changes made to a file, including edits to the content, format changes, or metadata updates."},
		{"File Download", "Records when a user downloads a file, including the file name and time of download."},
		{"File Access", "Logs each instance of a file being accessed or opened by a user, noting the file name and access time."},
		{"File Move", "Tracks when a file is moved from one location to another, recording the original and new locations."},
		{"File Copy", "Notes when a user makes a copy of a file, including details of the source and destination locations."},
		{"File Permission Change", "Logs changes made to file permissions, detailing the file name and the updated permissions."},
	}
	logSecurity = []Definition{
		{"Unauthorized Access Attempt", "Logs attempts to access the system or data without proper authorization."},
		{"Password Change Attempt", "Records attempts to change a password, whether successful or not."},
		{"Firewall Alert", "Logs alerts triggered by the firewall, indicating potential security threats."},
		{"Virus Detection", "Records instances where a virus or malware is detected by the system's antivirus software."},
		{"Data Breach", "Logs incidents where sensitive data is accessed or exposed in an unauthorized manner."},
		{"Security Patch Application", "Tracks the application of security patches to the system or software."},
		{"Encryption Status Change", "Logs changes in the encryption status of data, such as enabling or disabling encryption."},
		{"User Role Change", "Records changes in user roles, especially changes that affect access privileges."},
		{"Security Policy Update", "Logs updates or changes to security policies within the system."},
		{"Two-factor Authentication Event", "Tracks events related to two-factor authentication, including setup, changes, and authentication attempts."},
		{"Security Scan", "Records the outcomes of security scans, detailing identified vulnerabilities or anomalies."},
		{"Suspicious Activity", "Logs activities flagged as suspicious, which could indicate a potential security threat."},
	}
	logUserWeb = []Definition{
		{"Login Attempt", "Tracks each attempt a user makes to log in, whether successful or not."},
		{"Logout Attempt", "Tracks each attempt a user makes to log out, whether successful or not."},
		{"Comment Posting", "Tracks user comments on posts, articles, or other users' content."},
		{"Page Visit", "Records when a user visits a specific page or section of the application or website."},
		{"Search Query", "Logs the search terms a user enters in a search bar within the application."},
		{"Video View", "Tracks when a user views a video, including information on the video watched and duration of view."},
		{"Notification Interaction", "Records interactions with notifications, such as opening or dismissing them."},
		{"Profile Update", "Logs changes made to a user's profile, including photo updates, bio changes, etc."},
		{"File Upload", "Notes when a user uploads a file, including details like file type and size."},
		{"Item Purchase", "Records when a user makes a purchase, detailing the items bought and the transaction details."},
		{"Form Submission", "Logs when a user submits a form, such as a contact form, registration form, or a settings change form."},
		{"Social Media Share", "Logs when a user shares content from the application on social media platforms."},
	}
	logUserServer = []Definition{
		{"Server Start", "Logs when the server is started, including the timestamp and initial status."},
		{"Server Shutdown", "Records when the server is shut down, noting the time and reason for shutdown."},
		{"Service Start", "Tracks the initiation of a specific service on the server, including service name and start time."},
		{"Service Stop", "Logs when a service on the server is stopped, detailing the service name and stop time."},
		{"System Update", "Records updates made to the server's operating system or software packages."},
		{"Security Alert", "Logs security-related events, such as unauthorized access attempts or detected vulnerabilities."},
		{"Performance Metrics", "Tracks various performance metrics of the server, like CPU usage, memory usage, and disk space."},
		{"Backup Completion", "Records the completion of data backup processes, including time and status of the backup."},
		{"Error Reports", "Logs error events, with details about the error type, affected components, and timestamps."},
		{"Configuration Change", "Tracks changes made to server configurations, such as network settings or system parameters."},
		{"Network Activity", "Logs network-related activities, including incoming and outgoing traffic details."},
		{"Hardware Status", "Records the status of server hardware components, such as hard drives, memory modules, and CPUs."},
	}
	logUserAccount = []Definition{
		{"Login Attempt", "Tracks each attempt a user makes to log in, whether successful or not."},
		{"Logout Attempt", "Tracks each attempt a user makes to log out, whether successful or not."},
		{"Settings Change", "Tracks changes a user makes to their personal or application settings."},
		{"Connection Status", "Logs the status of a user's connection, including times of connection and disconnection."},
		{"Notification Interaction", "Records interactions with notifications, such as opening or dismissing them."},
		{"Password Change", "Logs when a user changes their password, including the timestamp of the change."},
		{"Account Creation", "Records the creation of a new user account, including details of the user and time of creation."},
		{"Account Deletion", "Tracks the deletion of a user account, noting the time and reason for deletion if available."},
		{"Role Assignment", "Logs changes to a user's role or permissions within the system."},
		{"Profile Update", "Records updates made to a user's profile information, such as name, email, or profile picture."},
		{"Two-factor Authentication Setup", "Logs the setup or changes to two-factor authentication settings for a user."},
		{"Session Timeout", "Records instances of user sessions timing out due to inactivity."},
	}
	logErrors = []Definition{
		{"Error Detected", "Logs the occurrence of an error within the system, including error code and description."},
		{"Error Severity Level", "Records the severity level of the error (e.g., Info, Warning, Error, Critical)."},
		{"Stack Trace", "Provides the stack trace for the error, showing the point of failure in the code."},
		{"Error Source Module", "Indicates the module or component within the system where the error originated."},
		{"User Impact", "Describes the impact of the error on the end-user or system operation."},
		{"Error Timestamp", "Records the exact date and time when the error occurred."},
		{"Recovery Action", "Logs any actions taken by the system to recover from the error or mitigate its effects."},
		{"Administrator Notification", "Indicates whether the system administrator or relevant personnel were notified of the error."},
		{"Error Frequency", "Tracks how often the error occurs, useful for identifying recurring issues."},
		{"Resolution Status", "Details the current status of the error, whether it has been resolved, is in progress, or pending investigation."},
	}
	logErrorCodes = []Definition{
		{"404 Not Found", "Logs when a requested resource could not be found on the server. Commonly occurs when a URL is mistyped or a page has been removed."},
		{"500 Internal Server Error", "Indicates a generic error message when the server encounters an unexpected condition that prevents it from fulfilling the request."},
		{"403 Forbidden", "Logged when the server understands the request but refuses to authorize it. This can be due to lack of access rights to the resource."},
		{"401 Unauthorized", "Occurs when authentication is required and has failed or has not been provided yet."},
		{"400 Bad Request", "Indicates that the server cannot or will not process the request due to a client error (e.g., malformed request syntax)."},
		{"502 Bad Gateway", "Logged when the server, while acting as a gateway or proxy, received an invalid response from the upstream server."},
		{"503 Service Unavailable", "Indicates that the server is not ready to handle the request, typically due to temporary overloading or maintenance."},
		{"408 Request Timeout", "Occurs when the server times out waiting for the request from the client."},
		{"504 Gateway Timeout", "Logged when the server, while acting as a gateway or proxy, did not receive a timely response from the upstream server."},
		{"410 Gone", "Indicates that the resource requested is no longer available and will not be available again."},
		{"405 Method Not Allowed", "Occurs when a request method is not supported for the requested resource."},
		{"406 Not Acceptable", "Logged when the server cannot produce a response matching the list of acceptable values defined in the request's proactive content negotiation headers."},
		{"412 Precondition Failed", "Indicates that one or more conditions in the request header fields evaluated to false."},
		{"413 Payload Too Large", "Occurs when the request entity is larger than limits defined by server; the server might close the connection or return a Retry-After header field."},
		{"429 Too Many Requests", "Logged when the user has sent too many requests in a given amount of time ('rate limiting')."},
	}
	logSeverities = []Definition{
		{"NORMAL", "An indication that the action is behaving normally."},
		{"INFO", "General information about system operation. Indicates normal operation and useful operational information."},
		{"DEBUG", "Detailed information, typically of interest only when diagnosing problems or troubleshooting."},
		{"WARNING", "An indication of potential issues or changes in normal operation that doesn't necessarily indicate an error."},
		{"ERROR", "A significant problem within the system that indicates a failure in a primary function."},
		{"CRITICAL", "A severe condition indicating a critical failure in the system, often requiring immediate attention."},
	}
	logStatusesNonIssue = []Definition{
		{"Pending", "Indicates that a task or process has been initiated but is not yet complete."},
		{"In Progress", "Shows that the task or process is currently underway."},
		{"Completed Successfully", "Signifies that the task or process has finished and met its expected outcome without errors."},
		{"Queued", "Indicates that the task or process is waiting in a queue for execution."},
	}
	logStatusesIssue = []Definition{
		{"Failed", "Indicates that the task or process did not complete successfully, often due to errors or exceptions."},
		{"Warning", "Suggests that the task or process encountered some issues but was able to complete. Warnings often highlight situations that might require attention but are not critical failures."},
		{"Cancelled", "This status is used when a task or process has been intentionally stopped before completion."},
		{"Timed Out", "Used when a task or process does not complete within a specified time limit."},
	}
	logSources = []Definition{
		{"Application", "Log entries originating from various parts of an application."},
		{"System", "Logs generated by the underlying operating system."},
		{"User", "Actions performed by users that generate logs."},
		{"Network", "Logs originating from network activities, such as requests, responses, or connectivity issues."},
		{"Database", "Logs generated from database operations, like queries or transactions."},
		{"External Service", "Logs from interactions with external services or APIs."},
		{"Device", "Logs generated by specific hardware devices (like printers, scanners, etc.)."},
		{"Security System", "Logs related to security events, like access control or breach attempts."},
		{"Scheduler", "Logs originating from scheduled tasks or cron jobs."},
		{"Error Handler", "Logs specifically related to error detection and handling."},
	}
)
