//go:build unit

package gradle_test

import (
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/rios0rios0/gradlehealth/internal/domain/entities"
	"github.com/rios0rios0/gradlehealth/internal/infrastructure/repositories/catalog"
)

const multiplatformBuild = `plugins {
    kotlin("multiplatform")
    id("com.android.library")
}

kotlin {
    androidTarget()
    ios()
    jvm()

    sourceSets {
        commonMain.dependencies {
            implementation("org.jetbrains.kotlinx:kotlinx-coroutines-core:1.7.3")
            api("io.ktor:ktor-client-core:2.3.5")
        }

        commonTest {
            dependencies {
                implementation("kotlin-test")
                implementation("org.jetbrains.kotlinx:kotlinx-coroutines-test:1.7.3")
            }
        }

        androidMain {
            dependencies {
                implementation("androidx.core:core-ktx:1.13.0")
                implementation("io.ktor:ktor-client-android:2.3.5")
            }
        }

        iosMain.dependencies {
            implementation("io.ktor:ktor-client-darwin:2.3.5")
        }

        jvmMain.dependencies {
            implementation("io.ktor:ktor-client-cio:2.3.5")
        }
    }
}

dependencies {
    implementation("com.google.code.gson:gson:2.10.1")
}`

const mixedBuild = `plugins {
    alias(libs.plugins.kotlin.multiplatform)
    alias(libs.plugins.android.library)
}

kotlin {
    androidTarget()
    ios()
    jvm()

    sourceSets {
        commonMain.dependencies {
            // Using libs references
            implementation(libs.kotlinx.coroutines.core)
            api(libs.ktor.client.core)

            // Using string dependencies
            implementation("com.google.code.gson:gson:2.10.1")
        }

        commonTest {
            dependencies {
                // Mix of libs and strings
                implementation(libs.kotlinx.coroutines.test)
                implementation("junit:junit:4.13.2")
                implementation("kotlin-test")
            }
        }

        androidMain {
            dependencies {
                implementation(libs.androidx.core.ktx)
                implementation(libs.ktor.client.android)
                implementation("androidx.lifecycle:lifecycle-runtime-ktx:2.7.0")
            }
        }

        iosMain.dependencies {
            implementation("io.ktor:ktor-client-darwin:2.3.5")
            implementation("org.jetbrains.kotlinx:kotlinx-datetime:0.4.1")
        }

        jvmMain.dependencies {
            implementation("io.ktor:ktor-client-cio:2.3.5") 
            implementation("ch.qos.logback:logback-classic:1.4.11")
        }
    }
}

dependencies {
    implementation(libs.ktor.client.core)  // also declared in commonMain
    implementation("com.squareup.retrofit2:retrofit:2.9.0")
}`

const mixedCatalog = `[versions]
kotlin = "1.9.10"
kotlinx-coroutines = "1.7.3"
ktor = "2.3.5"

[libraries]
kotlinx-coroutines-core = { group = "org.jetbrains.kotlinx", name = "kotlinx-coroutines-core", version.ref = "kotlinx-coroutines" }
ktor-client-core = { group = "io.ktor", name = "ktor-client-core", version.ref = "ktor" }
`

const projectDepsBuild = `dependencies {
    // External dependencies (should be analyzed)
    implementation("com.google.code.gson:gson:2.10.1")
    api("io.ktor:ktor-client-core:2.3.5")

    // Project dependencies
    implementation(project(":core"))
    api(project(":shared"))
    testImplementation(project(":test-utils"))

    // Projects accessor
    implementation(projects.data.database)
    api(projects.ui.components)

    implementation("androidx.core:core-ktx:1.13.0")
    implementation(project(":another-module"))
}`

const realProjectBuild = `kotlin {
    sourceSets {
        commonMain.dependencies {
            implementation(compose.runtime)
            implementation(libs.kotlinxSerializationJson)
            api(libs.kotlinxDatetime)
            api(libs.kotlinxCollectionsImmutable)
            api(libs.soilQueryCore)
        }

        androidMain.dependencies {
            implementation(libs.androidxAppCompat)
        }
    }
}

dependencies {
    commonMainImplementation(libs.material3)
}`

const realProjectCatalog = `[versions]
kotlinx-serialization = "1.6.2"
soil = "1.0.0-alpha02"

[libraries]
kotlinxSerializationJson = { module = "org.jetbrains.kotlinx:kotlinx-serialization-json", version.ref = "kotlinx-serialization" }
kotlinxDatetime = "org.jetbrains.kotlinx:kotlinx-datetime:0.5.0"
kotlinxCollectionsImmutable = { group = "org.jetbrains.kotlinx", name = "kotlinx-collections-immutable", version = "0.3.7" }
soilQueryCore = { module = "com.soil2024:query-core", version.ref = "soil" }
androidxAppCompat = { module = "androidx.appcompat:appcompat", version = { strictly = "1.6.1" } }
material3 = { module = "org.jetbrains.compose.material3:material3" }
`

func decodeCatalogs(t *testing.T, documents ...string) *entities.CatalogSet {
	t.Helper()
	catalogs := make([]*entities.VersionCatalog, 0, len(documents))
	for _, document := range documents {
		decoded, err := catalog.Decode("gradle/libs.versions.toml", []byte(document))
		require.NoError(t, err)
		catalogs = append(catalogs, decoded)
	}
	return entities.NewCatalogSet(catalogs...)
}

// declared renders a location as "configuration group:artifact:version" so
// assertions stay readable.
func declared(location entities.DependencyLocation) string {
	return location.Configuration + " " + location.Dependency.Key() + ":" + location.Dependency.VersionOrEmpty()
}

func declaredAll(locations []entities.DependencyLocation) []string {
	result := make([]string, 0, len(locations))
	for _, location := range locations {
		result = append(result, declared(location))
	}
	return result
}
