package internal

const ApplicationName = "treebump"
