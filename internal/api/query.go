package api

// projectQuery is the GraphQL document used to fetch a full project. The
// selection set must stay in sync with what the Thunkable frontend requests;
// trimming it changes which fields the pulled document carries.
const projectQuery = `query Project($id:ID!,$archiveFilename:String){
 project(id:$id,archiveFilename:$archiveFilename){
 id
 apiComponents
 assets
 backendUpgradeVersion
 blockly
 blocklyStringLength
 categories
 components
 componentStringLength
 createdAt
 figmaComponents
 description
 email
 hash
 icon
 isArchiveProjectFileUsed
 isHiddenFromPublicGallery
 isLegacy
 isOwner
 isPublic
 isQRCodeScanned
 isLiveTesting
 projectName
 settings{
 teamId
 appName
 packageName
 icon
 autoIncrementVersion
 ignoreNotchArea
 notchAreaColor
 androidVersionName
 androidVersionCode
 iosVersionNumber
 iosBuildNumber
 firebaseAPIKey
 firebaseDatabaseURL
 stripePublishableKeyTest
 stripePublishableKeyLive
 stripeAccountId
 stripeTestMode
 isPublic
 description
 mobileTutorial
 pushNotificationAndroidAppId
 pushNotificationIOSAppId
 pushNotificationGeolocationEnabled
 yandexAPIKey
 imageRecognizerServerURL
 imageRecognizerSubscriptionKey
 cloudName
 cloudinaryAPIKey
 cloudinaryAPISecret
 permissions
 googleMapAPIKeyAndroid
 googleMapAPIKeyIOS
 googleOAuthiOSClientID
 googleOAuthiOSURLScheme
 googleOAuthWebClientID
 appleOAuthWebClientID
 appleOAuthWebRedirectURI
 admobAppIdIOS
 admobAppIdAndroid
 admobUserTrackingUsageDescription
 __typename
}
 projectSettings{
 teamId
 appName
 packageName
 icon
 autoIncrementVersion
 ignoreNotchArea
 notchAreaColor
 androidVersionName
 androidVersionCode
 iosVersionNumber
 iosBuildNumber
 firebaseAPIKey
 firebaseDatabaseURL
 stripePublishableKeyTest
 stripePublishableKeyLive
 stripeAccountId
 stripeTestMode
 isPublic
 description
 mobileTutorial
 pushNotificationAndroidAppId
 pushNotificationIOSAppId
 pushNotificationGeolocationEnabled
 yandexAPIKey
 imageRecognizerServerURL
 imageRecognizerSubscriptionKey
 cloudName
 cloudinaryAPIKey
 cloudinaryAPISecret
 permissions
 googleMapAPIKeyAndroid
 googleMapAPIKeyIOS
 googleOAuthiOSClientID
 googleOAuthiOSURLScheme
 googleOAuthWebClientID
 appleOAuthWebClientID
 appleOAuthWebRedirectURI
 admobAppIdIOS
 admobAppIdAndroid
 admobUserTrackingUsageDescription
 __typename
}
 hasAdmob
 hasBluetoothLowEnergy
 hasPushNotification
 hasAssistant
 storageSize
 dataSourceLinks{
 id
 dataSource{
 id
 name
 configuration{
 id
 type
 __typename
}
 collections{
 id
 name
 label
 fields{
 id
 name
 label
 type
 __typename
}
 __typename
}
 __typename
}
 __typename
}
 localDataSources
 customProperties{
 uuid
 name
 componentType
 type
 defaultValue
 __typename
}
 appId
 modules{
 id
 name
 type
 blockly
 components
 apiComponents
 isApi
 projectName
 timeSaved
 assets
 customProperties{
 uuid
 name
 componentType
 type
 defaultValue
 __typename
}
 customEvents{
 uuid
 parameters
 name
 __typename
}
 customMethods{
 uuid
 parameters
 name
 hasOutput
 __typename
}
 __typename
}
 usesDragDropUi
 totalCopy
 totalStar
 starAction
 variables
 webAppSettings{
 appLink
 createdAt
 hasPhoneFrame
 isVisible
 webAppId
 __typename
}
 webCompanionSettings{
 customDomain{
 checkedAt
 domain
 verifiedAt
 __typename
}
 icon
 webAppId
 __typename
}
 frontendProperties{
 componentTreeCollapsedMap
 __typename
}
 defaultDesignerDevice
 defaultDesignerOrientation
 readOnly
 shares
 versions
 schemaVersion
 organization
 projectSnapshotsMetaData{
 snapshot{
 id
 projectSnapshotParentId
 __typename
}
 title
 createdAt
 isCurrentVersion
 numberOfScreens
 isAutoSnapshot
 archiveFilename
 creator{
 username
 __typename
}
 __typename
}
 projectSnapshotParentId
 projectSnapshotParent{
 id
 projectSnapshotsMetaData{
 snapshot{
 id
 projectSnapshotParentId
 __typename
}
 title
 createdAt
 isCurrentVersion
 numberOfScreens
 isAutoSnapshot
 archiveFilename
 creator{
 username
 __typename
}
 __typename
}
 __typename
}
 updatedAt
 username
 __typename
}
 user{
 id
 __typename
}
}
`
