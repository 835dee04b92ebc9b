package python

// builtinRemap maps import identifiers to distribution names wherever the two
// differ. A dotted key names one distribution inside a namespace package; an
// undotted key applies to the whole top-level import.
var builtinRemap = map[string]string{
	"_cffi_backend":                          "cffi",
	"_mysql":                                 "mysqlclient",
	"_pytest":                                "pytest",
	"_win32typing":                           "pywin32",
	"absl":                                   "absl-py",
	"actstream":                              "django-activity-stream",
	"Adafruit_ADS1x15":                       "Adafruit-ADS1x15",
	"Adafruit_BBIO":                          "Adafruit-BBIO",
	"adafruit_bme280":                        "adafruit-circuitpython-bme280",
	"Adafruit_CharLCD":                       "Adafruit-CharLCD",
	"Adafruit_DHT":                           "Adafruit-DHT",
	"adafruit_dht":                           "adafruit-circuitpython-dht",
	"Adafruit_GPIO":                          "Adafruit-GPIO",
	"Adafruit_MotorHAT":                      "Adafruit-MotorHAT",
	"adafruit_motorkit":                      "adafruit-circuitpython-motorkit",
	"adafruit_servokit":                      "adafruit-circuitpython-servokit",
	"Adafruit_SSD1306":                       "Adafruit-SSD1306",
	"adafruit_ssd1306":                       "adafruit-circuitpython-ssd1306",
	"admin_interface":                        "django-admin-interface",
	"adminsortable2":                         "django-admin-sortable2",
	"adodbapi":                               "pywin32",
	"adyen":                                  "Adyen",
	"AFQ":                                    "pyAFQ",
	"aio_pika":                               "aio-pika",
	"aiohttp_cors":                           "aiohttp-cors",
	"aiohttp_jinja2":                         "aiohttp-jinja2",
	"aiohttp_retry":                          "aiohttp-retry",
	"aiohttp_session":                        "aiohttp-session",
	"aiohttp_socks":                          "aiohttp-socks",
	"airflow":                                "apache-airflow",
	"ale_py":                                 "ale-py",
	"alive_progress":                         "alive-progress",
	"allauth":                                "django-allauth",
	"allure":                                 "allure-pytest",
	"alpaca":                                 "alpaca-py",
	"alpaca_trade_api":                       "alpaca-trade-api",
	"analytical":                             "django-analytical",
	"antlr4":                                 "antlr4-python3-runtime",
	"anymail":                                "django-anymail",
	"apache_beam":                            "apache-beam",
	"ape":                                    "eth-ape",
	"apiclient":                              "google-api-python-client",
	"AppKit":                                 "pyobjc-framework-Cocoa",
	"applescript":                            "py-applescript",
	"apscheduler":                            "APScheduler",
	"argon2":                                 "argon2-cffi",
	"arpeggio":                               "Arpeggio",
	"async_timeout":                          "async-timeout",
	"atari_py":                               "atari-py",
	"atlassian":                              "atlassian-python-api",
	"attr":                                   "attrs",
	"auth0":                                  "auth0-python",
	"authlib":                                "Authlib",
	"autoit":                                 "pyautoit",
	"autoslug":                               "django-autoslug",
	"AVFoundation":                           "pyobjc-framework-AVFoundation",
	"aws_cdk":                                "aws-cdk-lib",
	"aws_lambda_powertools":                  "aws-lambda-powertools",
	"aws_xray_sdk":                           "aws-xray-sdk",
	"ax":                                     "ax-platform",
	"axes":                                   "django-axes",
	"babel":                                  "Babel",
	"barcode":                                "python-barcode",
	"binance":                                "python-binance",
	"Bio":                                    "biopython",
	"bluetooth":                              "PyBluez",
	"board":                                  "adafruit-blinka",
	"bootstrap4":                             "django-bootstrap4",
	"bootstrap5":                             "django-bootstrap5",
	"bottleneck":                             "Bottleneck",
	"box":                                    "python-box",
	"Box2D":                                  "box2d-py",
	"braces":                                 "django-braces",
	"braket":                                 "amazon-braket-sdk",
	"brotli":                                 "Brotli",
	"brownie":                                "eth-brownie",
	"bs4":                                    "beautifulsoup4",
	"bson":                                   "pymongo",
	"busio":                                  "adafruit-blinka",
	"cachalot":                               "django-cachalot",
	"cacheops":                               "django-cacheops",
	"cairo":                                  "pycairo",
	"cairosvg":                               "CairoSVG",
	"camelot":                                "camelot-py",
	"can":                                    "python-can",
	"capnp":                                  "pycapnp",
	"cassandra":                              "cassandra-driver",
	"category_encoders":                      "category-encoders",
	"cattr":                                  "cattrs",
	"cerberus":                               "Cerberus",
	"cfnlint":                                "cfn-lint",
	"chameleon":                              "Chameleon",
	"channels_redis":                         "channels-redis",
	"charset_normalizer":                     "charset-normalizer",
	"Cheetah":                                "Cheetah3",
	"cherrypy":                               "CherryPy",
	"cinderclient":                           "python-cinderclient",
	"ckeditor":                               "django-ckeditor",
	"ckeditor_uploader":                      "django-ckeditor",
	"click_default_group":                    "click-default-group",
	"click_plugins":                          "click-plugins",
	"clickhouse_connect":                     "clickhouse-connect",
	"clickhouse_driver":                      "clickhouse-driver",
	"cms":                                    "django-cms",
	"colorfield":                             "django-colorfield",
	"colour":                                 "colour-science",
	"comet_ml":                               "comet-ml",
	"community":                              "python-louvain",
	"compressor":                             "django-compressor",
	"configargparse":                         "ConfigArgParse",
	"configurations":                         "django-configurations",
	"confluent_kafka":                        "confluent-kafka",
	"constance":                              "django-constance",
	"consul":                                 "python-consul",
	"CoreFoundation":                         "pyobjc-framework-Cocoa",
	"corsheaders":                            "django-cors-headers",
	"couchdb":                                "CouchDB",
	"crispy_bootstrap5":                      "crispy-bootstrap5",
	"crispy_forms":                           "django-crispy-forms",
	"Crypto":                                 "pycryptodome",
	"Cryptodome":                             "pycryptodomex",
	"csp":                                    "django-csp",
	"cups":                                   "pycups",
	"curl_cffi":                              "curl-cffi",
	"currency_converter":                     "CurrencyConverter",
	"cv2":                                    "opencv-python",
	"cython":                                 "Cython",
	"dal":                                    "django-autocomplete-light",
	"dash_bootstrap_components":              "dash-bootstrap-components",
	"dash_core_components":                   "dash-core-components",
	"dash_html_components":                   "dash-html-components",
	"dash_table":                             "dash-table",
	"databricks.connect":                     "databricks-connect",
	"databricks.sdk":                         "databricks-sdk",
	"databricks.sql":                         "databricks-sql-connector",
	"dataclasses_json":                       "dataclasses-json",
	"dateutil":                               "python-dateutil",
	"dbbackup":                               "django-dbbackup",
	"dbus":                                   "dbus-python",
	"dde":                                    "pywin32",
	"debug_toolbar":                          "django-debug-toolbar",
	"decouple":                               "python-decouple",
	"deep_translator":                        "deep-translator",
	"defender":                               "django-defender",
	"delorean":                               "Delorean",
	"delta":                                  "delta-spark",
	"dice_ml":                                "dice-ml",
	"dicom":                                  "pydicom",
	"digitalio":                              "adafruit-blinka",
	"digitalocean":                           "python-digitalocean",
	"discord":                                "discord.py",
	"dj_database_url":                        "dj-database-url",
	"dj_rest_auth":                           "dj-rest-auth",
	"django":                                 "Django",
	"django_celery_beat":                     "django-celery-beat",
	"django_celery_results":                  "django-celery-results",
	"django_cleanup":                         "django-cleanup",
	"django_countries":                       "django-countries",
	"django_extensions":                      "django-extensions",
	"django_filters":                         "django-filter",
	"django_htmx":                            "django-htmx",
	"django_jinja":                           "django-jinja",
	"django_otp":                             "django-otp",
	"django_prometheus":                      "django-prometheus",
	"django_q":                               "django-q",
	"django_ratelimit":                       "django-ratelimit",
	"django_redis":                           "django-redis",
	"django_rq":                              "django-rq",
	"django_select2":                         "django-select2",
	"django_ses":                             "django-ses",
	"django_tables2":                         "django-tables2",
	"djcelery":                               "django-celery",
	"djmoney":                                "django-money",
	"djstripe":                               "dj-stripe",
	"dns":                                    "dnspython",
	"doctr":                                  "python-doctr",
	"docx":                                   "python-docx",
	"dotenv":                                 "python-dotenv",
	"drf_spectacular":                        "drf-spectacular",
	"drf_yasg":                               "drf-yasg",
	"easy_thumbnails":                        "easy-thumbnails",
	"ebooklib":                               "EbookLib",
	"edge_tts":                               "edge-tts",
	"editor":                                 "python-editor",
	"eel":                                    "Eel",
	"elasticapm":                             "elastic-apm",
	"elasticsearch_dsl":                      "elasticsearch-dsl",
	"elftools":                               "pyelftools",
	"email_validator":                        "email-validator",
	"enchant":                                "pyenchant",
	"engineio":                               "python-engineio",
	"environ":                                "django-environ",
	"etcd":                                   "python-etcd",
	"eth_abi":                                "eth-abi",
	"eth_account":                            "eth-account",
	"eth_utils":                              "eth-utils",
	"eve":                                    "Eve",
	"exifread":                               "ExifRead",
	"extra_views":                            "django-extra-views",
	"eyed3":                                  "eyeD3",
	"face_recognition":                       "face-recognition",
	"facebook":                               "facebook-sdk",
	"factory":                                "factory-boy",
	"faiss":                                  "faiss-cpu",
	"fake_useragent":                         "fake-useragent",
	"faker":                                  "Faker",
	"fastapi_pagination":                     "fastapi-pagination",
	"fastapi_users":                          "fastapi-users",
	"fastapi_utils":                          "fastapi-utils",
	"faster_whisper":                         "faster-whisper",
	"fcm_django":                             "fcm-django",
	"ffmpeg":                                 "ffmpeg-python",
	"filer":                                  "django-filer",
	"firebase_admin":                         "firebase-admin",
	"fitz":                                   "PyMuPDF",
	"flaml":                                  "FLAML",
	"flask":                                  "Flask",
	"flask_admin":                            "Flask-Admin",
	"flask_api":                              "Flask-API",
	"flask_apscheduler":                      "Flask-APScheduler",
	"flask_assets":                           "Flask-Assets",
	"flask_babel":                            "Flask-Babel",
	"flask_basicauth":                        "Flask-BasicAuth",
	"flask_bcrypt":                           "Flask-Bcrypt",
	"flask_bootstrap":                        "Flask-Bootstrap",
	"flask_caching":                          "Flask-Caching",
	"flask_compress":                         "Flask-Compress",
	"flask_cors":                             "Flask-Cors",
	"flask_dance":                            "Flask-Dance",
	"flask_debugtoolbar":                     "Flask-DebugToolbar",
	"flask_executor":                         "Flask-Executor",
	"flask_graphql":                          "Flask-GraphQL",
	"flask_httpauth":                         "Flask-HTTPAuth",
	"flask_injector":                         "Flask-Injector",
	"flask_jwt_extended":                     "Flask-JWT-Extended",
	"flask_limiter":                          "Flask-Limiter",
	"flask_login":                            "Flask-Login",
	"flask_mail":                             "Flask-Mail",
	"flask_marshmallow":                      "flask-marshmallow",
	"flask_migrate":                          "Flask-Migrate",
	"flask_moment":                           "Flask-Moment",
	"flask_mongoengine":                      "flask-mongoengine",
	"flask_mysqldb":                          "Flask-MySQLdb",
	"flask_oauthlib":                         "Flask-OAuthlib",
	"flask_principal":                        "Flask-Principal",
	"flask_pymongo":                          "Flask-PyMongo",
	"flask_redis":                            "flask-redis",
	"flask_restful":                          "Flask-RESTful",
	"flask_restplus":                         "flask-restplus",
	"flask_restx":                            "flask-restx",
	"flask_script":                           "Flask-Script",
	"flask_seasurf":                          "Flask-SeaSurf",
	"flask_security":                         "Flask-Security",
	"flask_session":                          "Flask-Session",
	"flask_smorest":                          "flask-smorest",
	"flask_socketio":                         "Flask-SocketIO",
	"flask_sockets":                          "Flask-Sockets",
	"flask_sqlalchemy":                       "Flask-SQLAlchemy",
	"flask_sslify":                           "Flask-SSLify",
	"flask_swagger_ui":                       "flask-swagger-ui",
	"flask_talisman":                         "flask-talisman",
	"flask_uploads":                          "Flask-Uploads",
	"flask_wtf":                              "Flask-WTF",
	"floppyforms":                            "django-floppyforms",
	"forex_python":                           "forex-python",
	"formtools":                              "django-formtools",
	"Foundation":                             "pyobjc-framework-Cocoa",
	"fpdf":                                   "fpdf2",
	"gdal":                                   "GDAL",
	"genshi":                                 "Genshi",
	"gflags":                                 "python-gflags",
	"gi":                                     "PyGObject",
	"git":                                    "GitPython",
	"github":                                 "PyGithub",
	"gitlab":                                 "python-gitlab",
	"glanceclient":                           "python-glanceclient",
	"gnupg":                                  "python-gnupg",
	"google.api":                             "googleapis-common-protos",
	"google.appengine":                       "appengine-python-standard",
	"google.auth":                            "google-auth",
	"google.cloud":                           "google-cloud-core",
	"google.cloud.client":                    "google-cloud-core",
	"google.cloud.exceptions":                "google-cloud-core",
	"google.cloud.resourcemanager":           "google-cloud-resource-manager",
	"google.cloud.resourcemanager_v3":        "google-cloud-resource-manager",
	"google.cloud.secretmanager":             "google-cloud-secret-manager",
	"google.cloud.secretmanager_v1":          "google-cloud-secret-manager",
	"google.cloud.sql.connector":             "cloud-sql-python-connector",
	"google.iam":                             "grpc-google-iam-v1",
	"google.longrunning":                     "googleapis-common-protos",
	"google.oauth2":                          "google-auth",
	"google.protobuf":                        "protobuf",
	"google.rpc":                             "googleapis-common-protos",
	"google.type":                            "googleapis-common-protos",
	"google_auth_httplib2":                   "google-auth-httplib2",
	"google_auth_oauthlib":                   "google-auth-oauthlib",
	"google_crc32c":                          "google-crc32c",
	"google_trans_new":                       "google-trans-new",
	"googleapiclient":                        "google-api-python-client",
	"graphene_django":                        "graphene-django",
	"graphql":                                "graphql-core",
	"graphql_jwt":                            "django-graphql-jwt",
	"graphql_relay":                          "graphql-relay",
	"grappelli":                              "django-grappelli",
	"great_expectations":                     "great-expectations",
	"gremlin_python":                         "gremlinpython",
	"gridfs":                                 "pymongo",
	"grpc":                                   "grpcio",
	"grpc_health":                            "grpcio-health-checking",
	"grpc_reflection":                        "grpcio-reflection",
	"grpc_status":                            "grpcio-status",
	"grpc_tools":                             "grpcio-tools",
	"gtk":                                    "PyGTK",
	"gtts":                                   "gTTS",
	"guardian":                               "django-guardian",
	"haiku":                                  "dm-haiku",
	"hamcrest":                               "PyHamcrest",
	"haystack":                               "django-haystack",
	"hcl":                                    "pyhcl",
	"hcl2":                                   "python-hcl2",
	"health_check":                           "django-health-check",
	"heatclient":                             "python-heatclient",
	"hglib":                                  "python-hglib",
	"hid":                                    "hidapi",
	"hijack":                                 "django-hijack",
	"hubspot":                                "hubspot-api-client",
	"huggingface_hub":                        "huggingface-hub",
	"hummingbird":                            "hummingbird-ml",
	"hydra":                                  "hydra-core",
	"ib_insync":                              "ib-insync",
	"ibm_boto3":                              "ibm-cos-sdk",
	"ibm_db":                                 "ibm-db",
	"ibm_watson":                             "ibm-watson",
	"icu":                                    "PyICU",
	"igraph":                                 "python-igraph",
	"Image":                                  "Pillow",
	"ImageDraw":                              "Pillow",
	"ImageFont":                              "Pillow",
	"imagehash":                              "ImageHash",
	"imageio_ffmpeg":                         "imageio-ffmpeg",
	"imagekit":                               "django-imagekit",
	"imapclient":                             "IMAPClient",
	"imblearn":                               "imbalanced-learn",
	"impala":                                 "impyla",
	"impersonate":                            "django-impersonate",
	"import_export":                          "django-import-export",
	"importlib_metadata":                     "importlib-metadata",
	"importlib_resources":                    "importlib-resources",
	"influxdb_client":                        "influxdb-client",
	"interactions":                           "discord-py-interactions",
	"invitations":                            "django-invitations",
	"iptc":                                   "python-iptables",
	"ipware":                                 "django-ipware",
	"IPython":                                "ipython",
	"isapi":                                  "pywin32",
	"janome":                                 "Janome",
	"jazzmin":                                "django-jazzmin",
	"jenkins":                                "python-jenkins",
	"jinja2":                                 "Jinja2",
	"jks":                                    "pyjks",
	"jnpr":                                   "junos-eznc",
	"jose":                                   "python-jose",
	"json_log_formatter":                     "JSON-log-formatter",
	"jsonpath_ng":                            "jsonpath-ng",
	"jsonrpc":                                "json-rpc",
	"jupyter_client":                         "jupyter-client",
	"jupyter_core":                           "jupyter-core",
	"jwt":                                    "PyJWT",
	"kafka":                                  "kafka-python",
	"keras_preprocessing":                    "Keras-Preprocessing",
	"kerberos":                               "pykerberos",
	"keycloak":                               "python-keycloak",
	"keystone":                               "keystone-engine",
	"keystoneclient":                         "python-keystoneclient",
	"kivy":                                   "Kivy",
	"knox":                                   "django-rest-knox",
	"kucoin":                                 "python-kucoin",
	"label_studio_sdk":                       "label-studio-sdk",
	"langchain_anthropic":                    "langchain-anthropic",
	"langchain_aws":                          "langchain-aws",
	"langchain_chroma":                       "langchain-chroma",
	"langchain_community":                    "langchain-community",
	"langchain_core":                         "langchain-core",
	"langchain_google_genai":                 "langchain-google-genai",
	"langchain_huggingface":                  "langchain-huggingface",
	"langchain_openai":                       "langchain-openai",
	"langchain_text_splitters":               "langchain-text-splitters",
	"language_tool_python":                   "language-tool-python",
	"ldap":                                   "python-ldap",
	"ldapurl":                                "python-ldap",
	"ldif":                                   "python-ldap",
	"Levenshtein":                            "python-Levenshtein",
	"libcloud":                               "apache-libcloud",
	"libfuturize":                            "future",
	"libpasteurize":                          "future",
	"libvirt":                                "libvirt-python",
	"lightning_fabric":                       "lightning-fabric",
	"linode_api4":                            "linode-api4",
	"llama_cpp":                              "llama-cpp-python",
	"llama_index":                            "llama-index",
	"llama_parse":                            "llama-parse",
	"localflavor":                            "django-localflavor",
	"logstash":                               "python-logstash",
	"logzio":                                 "logzio-python-handler",
	"lzo":                                    "python-lzo",
	"magic":                                  "python-magic",
	"mailchimp_marketing":                    "mailchimp-marketing",
	"mailchimp_transactional":                "mailchimp-transactional",
	"mailer":                                 "django-mailer",
	"mailjet_rest":                           "mailjet-rest",
	"maintenance_mode":                       "django-maintenance-mode",
	"mako":                                   "Mako",
	"markdown":                               "Markdown",
	"markdown_it":                            "markdown-it-py",
	"markdownx":                              "django-markdownx",
	"markupsafe":                             "MarkupSafe",
	"marshmallow_dataclass":                  "marshmallow-dataclass",
	"marshmallow_enum":                       "marshmallow-enum",
	"marshmallow_sqlalchemy":                 "marshmallow-sqlalchemy",
	"matplotlib_venn":                        "matplotlib-venn",
	"mdit_py_plugins":                        "mdit-py-plugins",
	"MeCab":                                  "mecab-python3",
	"mechanicalsoup":                         "MechanicalSoup",
	"memcache":                               "python-memcached",
	"mesonpy":                                "meson-python",
	"mimeparse":                              "python-mimeparse",
	"model_bakery":                           "model-bakery",
	"model_mommy":                            "model-mommy",
	"model_utils":                            "django-model-utils",
	"modeltranslation":                       "django-modeltranslation",
	"moneyed":                                "py-moneyed",
	"more_itertools":                         "more-itertools",
	"mouseinfo":                              "MouseInfo",
	"mpl_toolkits":                           "matplotlib",
	"mpl_toolkits.basemap":                   "basemap",
	"mptt":                                   "django-mptt",
	"msgraph":                                "msgraph-sdk",
	"multipart":                              "python-multipart",
	"mx":                                     "egenix-mx-base",
	"mypy_extensions":                        "mypy-extensions",
	"mysql":                                  "mysql-connector-python",
	"MySQLdb":                                "mysqlclient",
	"mysqlx":                                 "mysql-connector-python",
	"myst_parser":                            "myst-parser",
	"nacl":                                   "PyNaCl",
	"nats":                                   "nats-py",
	"nemo":                                   "nemo_toolkit",
	"nested_admin":                           "django-nested-admin",
	"netfilterqueue":                         "NetfilterQueue",
	"neutronclient":                          "python-neutronclient",
	"newspaper":                              "newspaper3k",
	"ninja":                                  "django-ninja",
	"nmap":                                   "python-nmap",
	"notifications":                          "django-notifications-hq",
	"notion_client":                          "notion-client",
	"novaclient":                             "python-novaclient",
	"ntlm_auth":                              "ntlm-auth",
	"ntsecuritycon":                          "pywin32",
	"oauth2_provider":                        "django-oauth-toolkit",
	"objc":                                   "pyobjc-core",
	"odf":                                    "odfpy",
	"office365":                              "Office365-REST-Python-Client",
	"ogr":                                    "GDAL",
	"onelogin":                               "python3-saml",
	"open_clip":                              "open-clip-torch",
	"opencensus_ext_azure":                   "opencensus-ext-azure",
	"OpenGL":                                 "PyOpenGL",
	"OpenGL_accelerate":                      "PyOpenGL-accelerate",
	"opensearchpy":                           "opensearch-py",
	"openslide":                              "openslide-python",
	"OpenSSL":                                "pyOpenSSL",
	"openstack":                              "openstacksdk",
	"opentelemetry":                          "opentelemetry-api",
	"opentelemetry.baggage":                  "opentelemetry-api",
	"opentelemetry.context":                  "opentelemetry-api",
	"opentelemetry.environment_variables":    "opentelemetry-api",
	"opentelemetry.exporter.otlp.proto.grpc": "opentelemetry-exporter-otlp-proto-grpc",
	"opentelemetry.exporter.otlp.proto.http": "opentelemetry-exporter-otlp-proto-http",
	"opentelemetry.metrics":                  "opentelemetry-api",
	"opentelemetry.propagate":                "opentelemetry-api",
	"opentelemetry.propagators":              "opentelemetry-api",
	"opentelemetry.propagators.aws":          "opentelemetry-propagator-aws-xray",
	"opentelemetry.propagators.b3":           "opentelemetry-propagator-b3",
	"opentelemetry.propagators.jaeger":       "opentelemetry-propagator-jaeger",
	"opentelemetry.semconv":                  "opentelemetry-semantic-conventions",
	"opentelemetry.trace":                    "opentelemetry-api",
	"opentelemetry.util":                     "opentelemetry-api",
	"ordered_model":                          "django-ordered-model",
	"oscar":                                  "django-oscar",
	"osgeo":                                  "GDAL",
	"osr":                                    "GDAL",
	"owncloud":                               "pyocclient",
	"paddle":                                 "paddlepaddle",
	"paho":                                   "paho-mqtt",
	"pandas_datareader":                      "pandas-datareader",
	"pandas_gbq":                             "pandas-gbq",
	"pandas_profiling":                       "pandas-profiling",
	"pandas_ta":                              "pandas-ta",
	"parler":                                 "django-parler",
	"parselmouth":                            "praat-parselmouth",
	"past":                                   "future",
	"paste":                                  "Paste",
	"paste.deploy":                           "PasteDeploy",
	"pcap":                                   "pypcap",
	"pdfminer":                               "pdfminer.six",
	"perfmon":                                "pywin32",
	"pgpy":                                   "PGPy",
	"phonenumber_field":                      "django-phonenumber-field",
	"PIL":                                    "Pillow",
	"pint":                                   "Pint",
	"pkg_resources":                          "setuptools",
	"poetry.core":                            "poetry-core",
	"polymorphic":                            "django-polymorphic",
	"post_office":                            "django-post-office",
	"pptx":                                   "python-pptx",
	"pre_commit":                             "pre-commit",
	"prestodb":                               "presto-python-client",
	"pretty_midi":                            "pretty-midi",
	"price_parser":                           "price-parser",
	"progressbar":                            "progressbar2",
	"prometheus_client":                      "prometheus-client",
	"prometheus_fastapi_instrumentator":      "prometheus-fastapi-instrumentator",
	"prompt_toolkit":                         "prompt-toolkit",
	"proto":                                  "proto-plus",
	"psycopg2":                               "psycopg2-binary",
	"psycopg_pool":                           "psycopg-pool",
	"pulp":                                   "PuLP",
	"push_notifications":                     "django-push-notifications",
	"pwn":                                    "pwntools",
	"pwnlib":                                 "pwntools",
	"pyasn1_modules":                         "pyasn1-modules",
	"pyaudio":                                "PyAudio",
	"pyautogui":                              "PyAutoGUI",
	"pycrfsuite":                             "python-crfsuite",
	"pydantic_core":                          "pydantic-core",
	"pydantic_settings":                      "pydantic-settings",
	"pydrive":                                "PyDrive",
	"pydrive2":                               "PyDrive2",
	"pyflink":                                "apache-flink",
	"pygetwindow":                            "PyGetWindow",
	"pygments":                               "Pygments",
	"pyhive":                                 "PyHive",
	"pylab":                                  "matplotlib",
	"pymsgbox":                               "PyMsgBox",
	"pymupdf":                                "PyMuPDF",
	"pymysql":                                "PyMySQL",
	"pyomo":                                  "Pyomo",
	"pypfopt":                                "PyPortfolioOpt",
	"pyqrcode":                               "PyQRCode",
	"pyro":                                   "pyro-ppl",
	"pyroscope":                              "pyroscope-io",
	"pyscreeze":                              "PyScreeze",
	"pysqlite2":                              "pysqlite",
	"pytest_aiohttp":                         "pytest-aiohttp",
	"pytest_asyncio":                         "pytest-asyncio",
	"pytest_bdd":                             "pytest-bdd",
	"pytest_benchmark":                       "pytest-benchmark",
	"pytest_cov":                             "pytest-cov",
	"pytest_django":                          "pytest-django",
	"pytest_html":                            "pytest-html",
	"pytest_httpx":                           "pytest-httpx",
	"pytest_lazyfixture":                     "pytest-lazy-fixture",
	"pytest_localserver":                     "pytest-localserver",
	"pytest_mock":                            "pytest-mock",
	"pytest_randomly":                        "pytest-randomly",
	"pytest_rerunfailures":                   "pytest-rerunfailures",
	"pytest_snapshot":                        "pytest-snapshot",
	"pytest_subtests":                        "pytest-subtests",
	"pytest_timeout":                         "pytest-timeout",
	"python_jwt":                             "python-jwt",
	"pythoncom":                              "pywin32",
	"pythonjsonlogger":                       "python-json-logger",
	"pythonwin":                              "pywin32",
	"pytorch_lightning":                      "pytorch-lightning",
	"pyVim":                                  "pyvmomi",
	"pyvisa":                                 "PyVISA",
	"pyVmomi":                                "pyvmomi",
	"pywintypes":                             "pywin32",
	"pyximport":                              "Cython",
	"qcloud_cos":                             "cos-python-sdk-v5",
	"qdrant_client":                          "qdrant-client",
	"qtpy":                                   "QtPy",
	"quart":                                  "Quart",
	"Quartz":                                 "pyobjc-framework-Quartz",
	"rake_nltk":                              "rake-nltk",
	"rangefilter":                            "django-admin-rangefilter",
	"rapidjson":                              "python-rapidjson",
	"rasutil":                                "pywin32",
	"readability":                            "readability-lxml",
	"recurrence":                             "django-recurrence",
	"redis_cache":                            "django-redis-cache",
	"redis_lock":                             "python-redis-lock",
	"redlock":                                "redlock-py",
	"redminelib":                             "python-redmine",
	"registration":                           "django-registration",
	"regutil":                                "pywin32",
	"requests_aws4auth":                      "requests-aws4auth",
	"requests_cache":                         "requests-cache",
	"requests_futures":                       "requests-futures",
	"requests_html":                          "requests-html",
	"requests_mock":                          "requests-mock",
	"requests_ntlm":                          "requests-ntlm",
	"requests_oauthlib":                      "requests-oauthlib",
	"requests_toolbelt":                      "requests-toolbelt",
	"rest_auth":                              "django-rest-auth",
	"rest_framework":                         "djangorestframework",
	"rest_framework_api_key":                 "djangorestframework-api-key",
	"rest_framework_extensions":              "drf-extensions",
	"rest_framework_gis":                     "djangorestframework-gis",
	"rest_framework_jwt":                     "djangorestframework-jwt",
	"rest_framework_nested":                  "drf-nested-routers",
	"rest_framework_simplejwt":               "djangorestframework-simplejwt",
	"rest_framework_tracking":                "drf-api-tracking",
	"retinaface":                             "retina-face",
	"retro":                                  "gym-retro",
	"reversion":                              "django-reversion",
	"rich_click":                             "rich-click",
	"riskfolio":                              "Riskfolio-Lib",
	"robot":                                  "robotframework",
	"robots":                                 "django-robots",
	"rolepermissions":                        "django-role-permissions",
	"ropgadget":                              "ROPGadget",
	"rosetta":                                "django-rosetta",
	"routes":                                 "Routes",
	"RPi":                                    "RPi.GPIO",
	"rtmidi":                                 "python-rtmidi",
	"rtree":                                  "Rtree",
	"ruamel":                                 "ruamel.yaml",
	"saml2":                                  "pysaml2",
	"sane":                                   "python-sane",
	"sass_processor":                         "django-sass-processor",
	"sb3_contrib":                            "sb3-contrib",
	"scrapy":                                 "Scrapy",
	"ScriptingBridge":                        "pyobjc-framework-ScriptingBridge",
	"secretstorage":                          "SecretStorage",
	"segment_anything":                       "segment-anything",
	"SeleniumLibrary":                        "robotframework-seleniumlibrary",
	"seleniumwire":                           "selenium-wire",
	"semantic_kernel":                        "semantic-kernel",
	"send2trash":                             "Send2Trash",
	"sense_hat":                              "sense-hat",
	"sentence_transformers":                  "sentence-transformers",
	"sentry_sdk":                             "sentry-sdk",
	"serial":                                 "pyserial",
	"serial_asyncio":                         "pyserial-asyncio",
	"servicemanager":                         "pywin32",
	"shopify":                                "ShopifyAPI",
	"silk":                                   "django-silk",
	"simple_history":                         "django-simple-history",
	"simple_salesforce":                      "simple-salesforce",
	"simple_websocket":                       "simple-websocket",
	"simtk":                                  "openmm",
	"skbio":                                  "scikit-bio",
	"skbuild":                                "scikit-build",
	"skfuzzy":                                "scikit-fuzzy",
	"skimage":                                "scikit-image",
	"sklearn":                                "scikit-learn",
	"sklearn_crfsuite":                       "sklearn-crfsuite",
	"skmultilearn":                           "scikit-multilearn",
	"skopt":                                  "scikit-optimize",
	"sksparse":                               "scikit-sparse",
	"sksurv":                                 "scikit-survival",
	"slack":                                  "slackclient",
	"slack_bolt":                             "slack-bolt",
	"slack_sdk":                              "slack-sdk",
	"slugify":                                "python-slugify",
	"smartsheet":                             "smartsheet-python-sdk",
	"smb":                                    "pysmb",
	"smbclient":                              "smbprotocol",
	"snap7":                                  "python-snap7",
	"snappy":                                 "python-snappy",
	"snowflake":                              "snowflake-connector-python",
	"snowflake.connector":                    "snowflake-connector-python",
	"snowflake.snowpark":                     "snowflake-snowpark-python",
	"snowflake.sqlalchemy":                   "snowflake-sqlalchemy",
	"social_core":                            "social-auth-core",
	"social_django":                          "social-auth-app-django",
	"socketio":                               "python-socketio",
	"socks":                                  "PySocks",
	"sockshandler":                           "PySocks",
	"solcx":                                  "py-solc-x",
	"solo":                                   "django-solo",
	"sorl":                                   "sorl-thumbnail",
	"spacy_transformers":                     "spacy-transformers",
	"speech_recognition":                     "SpeechRecognition",
	"spellchecker":                           "pyspellchecker",
	"sphinx":                                 "Sphinx",
	"sphinx_autodoc_typehints":               "sphinx-autodoc-typehints",
	"sphinx_rtd_theme":                       "sphinx-rtd-theme",
	"split_settings":                         "django-split-settings",
	"spnego":                                 "pyspnego",
	"sqlalchemy":                             "SQLAlchemy",
	"sqlalchemy_bigquery":                    "sqlalchemy-bigquery",
	"sqlalchemy_redshift":                    "sqlalchemy-redshift",
	"sqlalchemy_utils":                       "SQLAlchemy-Utils",
	"square":                                 "squareup",
	"sse_starlette":                          "sse-starlette",
	"sspi":                                   "pywin32",
	"sspicon":                                "pywin32",
	"stable_baselines3":                      "stable-baselines3",
	"starlette_exporter":                     "starlette-exporter",
	"stdnum":                                 "python-stdnum",
	"stomp":                                  "stomp.py",
	"storages":                               "django-storages",
	"strawberry":                             "strawberry-graphql",
	"strawberry_django":                      "strawberry-graphql-django",
	"sudachipy":                              "SudachiPy",
	"suds":                                   "suds-community",
	"surprise":                               "scikit-surprise",
	"swiftclient":                            "python-swiftclient",
	"tabula":                                 "tabula-py",
	"tagging":                                "django-tagging",
	"taggit":                                 "django-taggit",
	"talib":                                  "TA-Lib",
	"tatsu":                                  "TatSu",
	"telebot":                                "pyTelegramBotAPI",
	"telegram":                               "python-telegram-bot",
	"telethon":                               "Telethon",
	"templated_email":                        "django-templated-email",
	"tencentcloud":                           "tencentcloud-sdk-python",
	"tensorflow_addons":                      "tensorflow-addons",
	"tensorflow_datasets":                    "tensorflow-datasets",
	"tensorflow_hub":                         "tensorflow-hub",
	"tensorflow_io":                          "tensorflow-io",
	"tensorflow_probability":                 "tensorflow-probability",
	"tensorflow_text":                        "tensorflow-text",
	"text_unidecode":                         "text-unidecode",
	"tflite_runtime":                         "tflite-runtime",
	"time_machine":                           "time-machine",
	"timezone_field":                         "django-timezone-field",
	"tinymce":                                "django-tinymce",
	"tomli_w":                                "tomli-w",
	"torch_cluster":                          "torch-cluster",
	"torch_geometric":                        "torch-geometric",
	"torch_scatter":                          "torch-scatter",
	"torch_sparse":                           "torch-sparse",
	"tortoise":                               "tortoise-orm",
	"tree":                                   "dm-tree",
	"treebeard":                              "django-treebeard",
	"trello":                                 "py-trello",
	"twisted":                                "Twisted",
	"two_factor":                             "django-two-factor-auth",
	"typed_ast":                              "typed-ast",
	"typing_extensions":                      "typing-extensions",
	"typing_inspect":                         "typing-inspect",
	"ua_parser":                              "ua-parser",
	"uinput":                                 "python-uinput",
	"umap":                                   "umap-learn",
	"umsgpack":                               "u-msgpack-python",
	"undetected_chromedriver":                "undetected-chromedriver",
	"unidecode":                              "Unidecode",
	"usb":                                    "pyusb",
	"user_agents":                            "user-agents",
	"vagrant":                                "python-vagrant",
	"vcf":                                    "PyVCF",
	"vcr":                                    "vcrpy",
	"versatileimagefield":                    "django-versatileimagefield",
	"vertexai":                               "google-cloud-aiplatform",
	"visa":                                   "PyVISA",
	"vk_api":                                 "vk-api",
	"vlc":                                    "python-vlc",
	"waffle":                                 "django-waffle",
	"watson":                                 "django-watson",
	"weasyprint":                             "WeasyPrint",
	"weaviate":                               "weaviate-client",
	"web":                                    "web.py",
	"webdav3":                                "webdavclient3",
	"webdriver_manager":                      "webdriver-manager",
	"webob":                                  "WebOb",
	"webpack_loader":                         "django-webpack-loader",
	"websocket":                              "websocket-client",
	"webview":                                "pywebview",
	"werkzeug":                               "Werkzeug",
	"whisper":                                "openai-whisper",
	"whois":                                  "python-whois",
	"widget_tweaks":                          "django-widget-tweaks",
	"win32api":                               "pywin32",
	"win32clipboard":                         "pywin32",
	"win32com":                               "pywin32",
	"win32comext":                            "pywin32",
	"win32con":                               "pywin32",
	"win32console":                           "pywin32",
	"win32cred":                              "pywin32",
	"win32crypt":                             "pywin32",
	"win32ctypes":                            "pywin32-ctypes",
	"win32event":                             "pywin32",
	"win32evtlog":                            "pywin32",
	"win32evtlogutil":                        "pywin32",
	"win32file":                              "pywin32",
	"win32gui":                               "pywin32",
	"win32gui_struct":                        "pywin32",
	"win32help":                              "pywin32",
	"win32inet":                              "pywin32",
	"win32job":                               "pywin32",
	"win32lz":                                "pywin32",
	"win32net":                               "pywin32",
	"win32netcon":                            "pywin32",
	"win32pdh":                               "pywin32",
	"win32pdhutil":                           "pywin32",
	"win32pipe":                              "pywin32",
	"win32print":                             "pywin32",
	"win32process":                           "pywin32",
	"win32profile":                           "pywin32",
	"win32ras":                               "pywin32",
	"win32security":                          "pywin32",
	"win32service":                           "pywin32",
	"win32serviceutil":                       "pywin32",
	"win32timezone":                          "pywin32",
	"win32trace":                             "pywin32",
	"win32transaction":                       "pywin32",
	"win32ts":                                "pywin32",
	"win32ui":                                "pywin32",
	"win32uiole":                             "pywin32",
	"win32wnet":                              "pywin32",
	"winerror":                               "pywin32",
	"winioctlcon":                            "pywin32",
	"winnt":                                  "pywin32",
	"winperf":                                "pywin32",
	"winrm":                                  "pywinrm",
	"winxpgui":                               "pywin32",
	"winxptheme":                             "pywin32",
	"wmi":                                    "WMI",
	"wx":                                     "wxPython",
	"xdist":                                  "pytest-xdist",
	"xdo":                                    "python-libxdo",
	"Xlib":                                   "python-xlib",
	"xlsxwriter":                             "XlsxWriter",
	"yahoo_fin":                              "yahoo-fin",
	"yaml":                                   "PyYAML",
	"yara":                                   "yara-python",
	"ydata_profiling":                        "ydata-profiling",
	"youtube_dl":                             "youtube-dl",
	"youtube_transcript_api":                 "youtube-transcript-api",
	"yoyo":                                   "yoyo-migrations",
	"yt_dlp":                                 "yt-dlp",
	"z3":                                     "z3-solver",
	"zmq":                                    "pyzmq",
	"zope":                                   "zope.interface",
}
